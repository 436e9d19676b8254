// Package installer orchestrates the end-to-end install flow: preflight,
// variant choice, fetch, version comparison, and the conditional
// build-and-install pipeline.
package installer

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/conn-castle/castle-install/internal/config"
	"github.com/conn-castle/castle-install/internal/messages"
	"github.com/conn-castle/castle-install/internal/pkgbuild"
	"github.com/conn-castle/castle-install/internal/preflight"
	"github.com/conn-castle/castle-install/internal/prompt"
	"github.com/conn-castle/castle-install/internal/variant"
	"github.com/conn-castle/castle-install/internal/workspace"
)

// RequiredTools are the external commands the flow shells out to, verified
// before any side effect. Cloning runs in-process through go-git, so git is
// not on the list.
var RequiredTools = []string{"bash", "makepkg", "pacman", "sudo"}

// PackageDB resolves installed versions from the host package database.
type PackageDB interface {
	InstalledVersion(pkg string) (string, bool, error)
}

// Builder builds the target package and locates the produced artifact.
type Builder interface {
	Build(dir string, target string) error
	LocateArtifact(dir string, target string, version string) (string, []string, error)
}

// ArtifactInstaller installs a built artifact on the host.
type ArtifactInstaller interface {
	Install(dir string, pkg string, artifact string) error
}

// Options wire the flow's collaborators and configuration.
type Options struct {
	Settings config.Settings
	// VariantOverride forces the variant choice; empty means prompt.
	VariantOverride string
	Prompter        prompt.Prompter
	DB              PackageDB
	Builder         Builder
	Installer       ArtifactInstaller
	Sys             preflight.System
	Out             io.Writer
	Err             io.Writer
}

// workspaceHandle is the slice of workspace.Workspace the flow needs.
type workspaceHandle interface {
	Release()
	Fetch(ctx context.Context, opts workspace.FetchOptions) (string, error)
}

// Seams for tests.
var (
	acquireFunc           = func() (workspaceHandle, error) { return workspace.Acquire() }
	definitionVersionFunc = pkgbuild.Version
)

// Run drives one install flow. A user decline is a clean no-op, not an
// error; every other failure is terminal and the workspace is released on
// all paths.
func Run(ctx context.Context, opts Options) error {
	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	errOut := opts.Err
	if errOut == nil {
		errOut = io.Discard
	}

	if err := preflight.Check(opts.Sys, RequiredTools); err != nil {
		return err
	}

	choices := variant.Choices(opts.Settings.StandardPackage, opts.Settings.ElectronPackage)
	selected, err := variant.Resolve(opts.VariantOverride, choices, opts.Prompter)
	if err != nil {
		return err
	}

	ws, err := acquireFunc()
	if err != nil {
		return err
	}
	defer ws.Release()

	definitionDir, err := ws.Fetch(ctx, workspace.FetchOptions{
		RepoURL:  opts.Settings.RepoURL,
		CloneDir: opts.Settings.CloneDir,
		Subdir:   opts.Settings.PackageSubdir,
	})
	if err != nil {
		return err
	}

	available, err := definitionVersionFunc(filepath.Join(definitionDir, workspace.DefinitionFile))
	if err != nil {
		return err
	}

	installed, found, err := opts.DB.InstalledVersion(selected.Package)
	if err != nil {
		return err
	}

	proceed, err := Decide(installed, found, available, opts.Prompter)
	if err != nil {
		return err
	}
	if !proceed {
		_, _ = fmt.Fprintln(out, messages.RunDeclined)
		return nil
	}

	if err := opts.Builder.Build(definitionDir, selected.Package); err != nil {
		return err
	}

	artifact, extra, err := opts.Builder.LocateArtifact(definitionDir, selected.Package, available)
	if err != nil {
		return err
	}
	if len(extra) > 0 {
		warn := color.New(color.FgYellow)
		_, _ = warn.Fprintf(errOut, messages.ArtifactMultipleWarnFmt, len(extra)+1, filepath.Base(artifact))
	}

	if err := opts.Installer.Install(definitionDir, selected.Package, artifact); err != nil {
		return err
	}

	success := color.New(color.FgGreen)
	_, _ = success.Fprintf(out, messages.RunSuccessFmt, selected.Label, selected.Package, available)
	return nil
}
