// Package terminal provides controlling-terminal access and detection.
package terminal

import (
	"errors"
	"os"

	"golang.org/x/term"
)

// ErrNotInteractive reports a session whose standard streams are not
// attached to a terminal.
var ErrNotInteractive = errors.New("standard streams are not attached to a terminal")

// IsInteractive reports whether the session can prompt the user. Both
// standard input and output must be terminals; a redirected stream means the
// run is scripted.
func IsInteractive() bool {
	for _, f := range []*os.File{os.Stdin, os.Stdout} {
		if !term.IsTerminal(int(f.Fd())) {
			return false
		}
	}
	return true
}

// OpenControlling opens the process's controlling terminal for reading and
// writing. Prompts and nested privilege prompts go through this handle so the
// flow stays usable when the standard streams are redirected.
func OpenControlling() (*os.File, error) {
	return os.OpenFile("/dev/tty", os.O_RDWR, 0)
}
