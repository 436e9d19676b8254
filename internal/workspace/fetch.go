package workspace

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	git "github.com/go-git/go-git/v5"

	"github.com/conn-castle/castle-install/internal/messages"
)

// DefinitionFile is the package definition consumed by makepkg and the
// version resolver.
const DefinitionFile = "PKGBUILD"

// FetchOptions configure the repository fetch.
type FetchOptions struct {
	RepoURL  string
	CloneDir string
	// Subdir is the repository subdirectory holding the package definition;
	// empty means the repository root.
	Subdir string
}

// cloneFunc is a seam for tests.
var cloneFunc = func(ctx context.Context, path string, opts *git.CloneOptions) error {
	_, err := git.PlainCloneContext(ctx, path, false, opts)
	return err
}

// Fetch shallow-clones the packaging repository into the workspace and
// returns the directory holding the package definition.
func (w *Workspace) Fetch(ctx context.Context, opts FetchOptions) (string, error) {
	root := w.Dir()
	if root == "" {
		return "", errors.New(messages.WorkspaceReleased)
	}

	clonePath := filepath.Join(root, opts.CloneDir)
	cloneOpts := &git.CloneOptions{
		URL:          opts.RepoURL,
		Depth:        1,
		SingleBranch: true,
	}
	if err := cloneFunc(ctx, clonePath, cloneOpts); err != nil {
		return "", fmt.Errorf(messages.FetchCloneFailedFmt, opts.RepoURL, err)
	}

	definitionDir := clonePath
	if opts.Subdir != "" {
		definitionDir = filepath.Join(clonePath, opts.Subdir)
	}
	info, err := os.Stat(definitionDir)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf(messages.FetchMissingDefinitionDirFmt, definitionDir)
	}
	definitionPath := filepath.Join(definitionDir, DefinitionFile)
	if _, err := os.Stat(definitionPath); err != nil {
		return "", fmt.Errorf(messages.FetchMissingDefinitionFileFmt, definitionPath)
	}
	return definitionDir, nil
}
