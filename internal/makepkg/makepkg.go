// Package makepkg drives the external package build tool and locates its
// output artifact.
package makepkg

import (
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
	"sort"

	"github.com/conn-castle/castle-install/internal/messages"
)

// System abstracts process execution and artifact lookup for the builder.
type System interface {
	RunInteractive(dir string, stdin io.Reader, stdout io.Writer, stderr io.Writer, name string, args ...string) error
	Glob(pattern string) ([]string, error)
}

// RealSystem implements System with os/exec and the filesystem.
type RealSystem struct{}

// RunInteractive runs the command with the caller's streams attached.
func (RealSystem) RunInteractive(dir string, stdin io.Reader, stdout io.Writer, stderr io.Writer, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}

// Glob returns the names of all files matching pattern.
func (RealSystem) Glob(pattern string) ([]string, error) {
	return filepath.Glob(pattern)
}

// Builder runs makepkg scoped to a single target package.
type Builder struct {
	Sys System
	// TTY is the controlling terminal, forwarded so nested sudo prompts from
	// dependency installation can be answered.
	TTY io.Reader
	Out io.Writer
	Err io.Writer
}

func (b Builder) sys() System {
	if b.Sys != nil {
		return b.Sys
	}
	return RealSystem{}
}

// Build builds only target from the definition in dir, syncing and
// installing missing dependencies unattended.
func (b Builder) Build(dir string, target string) error {
	err := b.sys().RunInteractive(dir, b.TTY, b.Out, b.Err,
		"makepkg", "--pkg", target, "--syncdeps", "--noconfirm")
	if err != nil {
		return fmt.Errorf(messages.BuildFailedFmt, target, err)
	}
	return nil
}

// LocateArtifact finds the package file produced for target at version.
// Matches are ordered lexicographically so selection is deterministic across
// filesystems; extra matches are returned for the caller to warn about.
func (b Builder) LocateArtifact(dir string, target string, version string) (string, []string, error) {
	pattern := filepath.Join(dir, fmt.Sprintf("%s-%s-*.pkg.tar*", target, version))
	matches, err := b.sys().Glob(pattern)
	if err != nil {
		return "", nil, fmt.Errorf(messages.ArtifactGlobFailedFmt, pattern, err)
	}
	if len(matches) == 0 {
		return "", nil, fmt.Errorf(messages.ArtifactNotFoundFmt, pattern, dir)
	}
	sort.Strings(matches)
	return matches[0], matches[1:], nil
}
