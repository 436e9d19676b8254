// Package config resolves the installer's settings from defaults, an
// optional TOML file, and CASTLE_INSTALL_* environment overrides.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/conn-castle/castle-install/internal/messages"
)

// EnvPrefix namespaces every environment override.
const EnvPrefix = "CASTLE_INSTALL_"

// Settings are the externally overridable inputs of one install run.
type Settings struct {
	// RepoURL is the packaging repository to clone.
	RepoURL string `toml:"repo_url"`
	// CloneDir is the fixed directory name the repository is cloned into
	// inside the workspace.
	CloneDir string `toml:"clone_dir"`
	// PackageSubdir is the repository subdirectory holding the package
	// definition; empty means the repository root.
	PackageSubdir string `toml:"package_subdir"`
	// StandardPackage and ElectronPackage are the two variant target packages.
	StandardPackage string `toml:"standard_package"`
	ElectronPackage string `toml:"electron_package"`
	// Variant forces the variant choice and skips the selection menu.
	Variant string `toml:"variant"`
}

// Defaults returns the built-in settings for the Castle packaging repository.
func Defaults() Settings {
	return Settings{
		RepoURL:         "https://github.com/conn-castle/castle-desktop-aur.git",
		CloneDir:        "castle-desktop-aur",
		PackageSubdir:   "",
		StandardPackage: "castle-desktop",
		ElectronPackage: "castle-desktop-electron",
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf(messages.ConfigResolveHomeFmt, err)
	}
	return filepath.Join(home, ".config", "castle-install", "config.toml"), nil
}

// Load builds Settings with precedence defaults < config file < environment.
// An explicit path must exist; the default path is optional.
func Load(path string) (Settings, error) {
	settings := Defaults()

	explicit := strings.TrimSpace(path) != ""
	if explicit {
		expanded, err := homedir.Expand(path)
		if err != nil {
			return Settings{}, fmt.Errorf(messages.ConfigExpandPathFmt, path, err)
		}
		path = expanded
	} else {
		defaultPath, err := DefaultPath()
		if err != nil {
			return Settings{}, err
		}
		path = defaultPath
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		decoder := toml.NewDecoder(bytes.NewReader(data))
		if err := decoder.Decode(&settings); err != nil {
			return Settings{}, fmt.Errorf(messages.ConfigInvalidFmt, path, err)
		}
	case explicit || !os.IsNotExist(err):
		return Settings{}, fmt.Errorf(messages.ConfigReadFailedFmt, path, err)
	}

	settings.applyEnv(os.LookupEnv)
	return settings, nil
}

// applyEnv overlays non-empty CASTLE_INSTALL_* values onto the settings.
func (s *Settings) applyEnv(lookup func(string) (string, bool)) {
	apply := func(key string, dst *string) {
		if value, ok := lookup(EnvPrefix + key); ok && strings.TrimSpace(value) != "" {
			*dst = strings.TrimSpace(value)
		}
	}
	apply("REPO_URL", &s.RepoURL)
	apply("CLONE_DIR", &s.CloneDir)
	apply("PKG_SUBDIR", &s.PackageSubdir)
	apply("PKG_STANDARD", &s.StandardPackage)
	apply("PKG_ELECTRON", &s.ElectronPackage)
	apply("VARIANT", &s.Variant)
}
