// Package pkgbuild extracts version fields from a package definition file.
package pkgbuild

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/conn-castle/castle-install/internal/messages"
	"github.com/conn-castle/castle-install/internal/version"
)

// evalScript sources the definition and prints the two version fields, one
// per line. It runs in a separate bash process with a scrubbed environment,
// so nothing defined by the file leaks back into this process.
const evalScript = `set -eu
source "$1"
printf '%s\n%s\n' "${pkgver-}" "${pkgrel-}"`

// evalFunc is a seam for tests.
var evalFunc = evalWithBash

// Version returns the composite version token declared by the definition at
// path. The file must exist and define both pkgver and pkgrel.
func Version(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf(messages.PkgbuildMissingFmt, path, err)
	}

	pkgver, pkgrel, err := evalFunc(path)
	if err != nil {
		return "", fmt.Errorf(messages.PkgbuildEvalFailedFmt, path, err)
	}
	if pkgver == "" || pkgrel == "" {
		return "", fmt.Errorf(messages.PkgbuildMissingFieldsFmt, path)
	}
	return version.Compose(pkgver, pkgrel), nil
}

// evalWithBash evaluates the definition in an isolated bash subprocess.
func evalWithBash(path string) (string, string, error) {
	cmd := exec.Command("bash", "--noprofile", "--norc", "-c", evalScript, "bash", path)
	cmd.Env = []string{"PATH=/usr/bin:/bin"}
	out, err := cmd.Output()
	if err != nil {
		return "", "", err
	}

	lines := strings.Split(string(out), "\n")
	if len(lines) < 2 {
		return "", "", fmt.Errorf(messages.PkgbuildUnexpectedOutputFmt, strings.TrimSpace(string(out)))
	}
	return strings.TrimSpace(lines[0]), strings.TrimSpace(lines[1]), nil
}
