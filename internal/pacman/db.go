package pacman

import (
	"fmt"
	"strings"

	"github.com/conn-castle/castle-install/internal/messages"
)

// DB queries the host package database.
type DB struct {
	Sys System
}

func (d DB) sys() System {
	if d.Sys != nil {
		return d.Sys
	}
	return RealSystem{}
}

// InstalledVersion returns the installed version token for pkg, or
// found=false when the package is absent. The query is read-only; a missing
// package is not an error.
func (d DB) InstalledVersion(pkg string) (string, bool, error) {
	out, code, err := d.sys().Output("pacman", "-Q", pkg)
	if err != nil {
		return "", false, fmt.Errorf(messages.PacmanQueryFailedFmt, pkg, err)
	}
	if code != 0 {
		return "", false, nil
	}

	// `pacman -Q name` prints "name version".
	fields := strings.Fields(string(out))
	if len(fields) < 2 {
		return "", false, fmt.Errorf(messages.PacmanQueryUnexpectedFmt, pkg, strings.TrimSpace(string(out)))
	}
	return fields[1], true, nil
}
