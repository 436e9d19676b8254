// Package pacman talks to the host package database and installer.
package pacman

import (
	"errors"
	"io"
	"os/exec"
)

// System abstracts process execution for queries and installs. The interface
// is package-local so tests can run in parallel without shared global state.
type System interface {
	// Output runs a command and returns its stdout and exit code. A non-zero
	// exit is reported through the code, not the error.
	Output(name string, args ...string) ([]byte, int, error)
	// RunInteractive runs a command with the given streams attached, so
	// nested privilege prompts reach the user.
	RunInteractive(dir string, stdin io.Reader, stdout io.Writer, stderr io.Writer, name string, args ...string) error
}

// RealSystem implements System with os/exec.
type RealSystem struct{}

// Output runs the command and separates exit status from execution failure.
func (RealSystem) Output(name string, args ...string) ([]byte, int, error) {
	out, err := exec.Command(name, args...).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return out, exitErr.ExitCode(), nil
		}
		return nil, 0, err
	}
	return out, 0, nil
}

// RunInteractive runs the command with the caller's streams attached.
func (RealSystem) RunInteractive(dir string, stdin io.Reader, stdout io.Writer, stderr io.Writer, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}
