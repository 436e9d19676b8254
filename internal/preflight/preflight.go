// Package preflight verifies required external tools before any side effect.
package preflight

import (
	"fmt"
	"os/exec"

	"github.com/conn-castle/castle-install/internal/messages"
)

// System abstracts command resolution. The interface is package-local so
// tests can run in parallel without shared global state.
type System interface {
	LookPath(file string) (string, error)
}

// RealSystem implements System using the process PATH.
type RealSystem struct{}

// LookPath searches for an executable named file in the directories named by the PATH environment variable.
func (RealSystem) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Check resolves each required tool and fails on the first one missing,
// naming it. Checking has no side effects.
func Check(sys System, tools []string) error {
	if sys == nil {
		sys = RealSystem{}
	}
	for _, tool := range tools {
		if _, err := sys.LookPath(tool); err != nil {
			return fmt.Errorf(messages.PreflightMissingToolFmt, tool, err)
		}
	}
	return nil
}
