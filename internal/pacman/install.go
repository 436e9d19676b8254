package pacman

import (
	"fmt"
	"io"

	"github.com/conn-castle/castle-install/internal/messages"
)

// Installer installs a built artifact through the privileged host installer.
type Installer struct {
	Sys System
	// TTY is the controlling terminal, forwarded so the sudo password prompt
	// can be answered even when the standard streams are redirected.
	TTY io.Reader
	Out io.Writer
	Err io.Writer
}

// Install installs the artifact built for pkg from dir.
func (i Installer) Install(dir string, pkg string, artifact string) error {
	sys := i.Sys
	if sys == nil {
		sys = RealSystem{}
	}
	if err := sys.RunInteractive(dir, i.TTY, i.Out, i.Err, "sudo", "pacman", "-U", artifact); err != nil {
		return fmt.Errorf(messages.PacmanInstallFailedFmt, pkg, err)
	}
	return nil
}
