package workspace

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	git "github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/require"
)

// withFakeClone substitutes the go-git clone with fn for one test.
func withFakeClone(t *testing.T, fn func(ctx context.Context, path string, opts *git.CloneOptions) error) {
	t.Helper()
	orig := cloneFunc
	cloneFunc = fn
	t.Cleanup(func() { cloneFunc = orig })
}

func acquireForTest(t *testing.T) *Workspace {
	t.Helper()
	w, err := Acquire()
	require.NoError(t, err)
	t.Cleanup(w.Release)
	return w
}

func TestFetchReturnsDefinitionDir(t *testing.T) {
	withFakeClone(t, func(_ context.Context, path string, opts *git.CloneOptions) error {
		require.Equal(t, 1, opts.Depth, "clone must be shallow")
		require.True(t, opts.SingleBranch)
		if err := os.MkdirAll(filepath.Join(path, "packaging"), 0o755); err != nil {
			return err
		}
		return os.WriteFile(filepath.Join(path, "packaging", DefinitionFile), []byte("pkgver=2.0.0\npkgrel=1\n"), 0o644)
	})

	w := acquireForTest(t)
	defDir, err := w.Fetch(context.Background(), FetchOptions{
		RepoURL:  "https://example.com/castle-desktop-aur.git",
		CloneDir: "castle-desktop-aur",
		Subdir:   "packaging",
	})
	require.NoError(t, err)
	require.Equal(t, filepath.Join(w.Dir(), "castle-desktop-aur", "packaging"), defDir)
}

func TestFetchCloneFailureNamesURL(t *testing.T) {
	withFakeClone(t, func(context.Context, string, *git.CloneOptions) error {
		return errors.New("repository not found")
	})

	w := acquireForTest(t)
	_, err := w.Fetch(context.Background(), FetchOptions{
		RepoURL:  "https://example.com/missing.git",
		CloneDir: "clone",
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "https://example.com/missing.git")
}

func TestFetchMissingSubdir(t *testing.T) {
	withFakeClone(t, func(_ context.Context, path string, _ *git.CloneOptions) error {
		return os.MkdirAll(path, 0o755)
	})

	w := acquireForTest(t)
	_, err := w.Fetch(context.Background(), FetchOptions{
		RepoURL:  "https://example.com/repo.git",
		CloneDir: "clone",
		Subdir:   "packaging",
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "packaging")
}

func TestFetchMissingDefinitionFile(t *testing.T) {
	withFakeClone(t, func(_ context.Context, path string, _ *git.CloneOptions) error {
		return os.MkdirAll(path, 0o755)
	})

	w := acquireForTest(t)
	_, err := w.Fetch(context.Background(), FetchOptions{
		RepoURL:  "https://example.com/repo.git",
		CloneDir: "clone",
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), DefinitionFile)
}

func TestFetchAfterReleaseFails(t *testing.T) {
	w, err := Acquire()
	require.NoError(t, err)
	w.Release()

	_, err = w.Fetch(context.Background(), FetchOptions{RepoURL: "https://example.com/repo.git", CloneDir: "clone"})
	require.Error(t, err)
}
