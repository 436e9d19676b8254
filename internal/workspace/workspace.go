// Package workspace manages the ephemeral directory holding the fetched
// packaging repository and build output for one run. The directory must be
// gone on every exit path: normal return, fatal error, or INT/TERM.
package workspace

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"golang.org/x/sys/unix"

	"github.com/conn-castle/castle-install/internal/messages"
)

// Seams for tests.
var (
	// killFunc re-delivers a signal to this process.
	killFunc = func(sig syscall.Signal) error {
		return unix.Kill(unix.Getpid(), sig)
	}
	statFunc = os.Stat
)

// Workspace is the scoped temporary directory for one install run.
type Workspace struct {
	mu     sync.Mutex
	dir    string
	origWD string
	sigCh  chan os.Signal
}

// Acquire creates a uniquely named workspace directory and arms the INT/TERM
// guard. The caller must defer Release.
func Acquire() (*Workspace, error) {
	dir, err := os.MkdirTemp("", "castle-install-")
	if err != nil {
		return nil, fmt.Errorf(messages.WorkspaceCreateFailedFmt, err)
	}
	info, err := statFunc(dir)
	if err != nil || !info.IsDir() {
		// Nothing may be left behind on any exit path, the failed one included.
		_ = os.RemoveAll(dir)
		return nil, fmt.Errorf(messages.WorkspaceMissingAfterCreateFmt, dir)
	}

	// Best effort; an unknown original directory only disables the chdir-back
	// step of Release.
	origWD, err := os.Getwd()
	if err != nil {
		origWD = ""
	}

	w := &Workspace{dir: dir, origWD: origWD}
	w.armGuard()
	return w, nil
}

// Dir returns the workspace root, or empty once released.
func (w *Workspace) Dir() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.dir
}

// armGuard registers the signal handler that releases the workspace and then
// re-raises the signal with default disposition, so the exit status reflects
// signal termination rather than a generic failure code.
func (w *Workspace) armGuard() {
	w.sigCh = make(chan os.Signal, 1)
	signal.Notify(w.sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig, ok := <-w.sigCh
		if !ok {
			return
		}
		w.Release()
		if sigNum, isSignal := sig.(syscall.Signal); isSignal {
			signal.Reset(sig)
			_ = killFunc(sigNum)
		}
	}()
}

// Release removes the workspace. It is idempotent: the path marker is
// cleared on the first call, so running it from both the signal guard and
// the normal exit path is safe.
func (w *Workspace) Release() {
	w.mu.Lock()
	dir := w.dir
	w.dir = ""
	w.mu.Unlock()
	if dir == "" {
		return
	}

	signal.Stop(w.sigCh)
	close(w.sigCh)

	// If an external command left the process inside the workspace, step back
	// out first; remove the tree regardless. Containment requires a path
	// boundary so a sibling directory sharing the name prefix does not match.
	if cwd, err := os.Getwd(); err == nil && w.origWD != "" &&
		(cwd == dir || strings.HasPrefix(cwd, dir+string(os.PathSeparator))) {
		_ = os.Chdir(w.origWD)
	}
	_ = os.RemoveAll(dir)
}
