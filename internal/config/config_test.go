package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaults(t *testing.T) {
	settings := Defaults()
	if settings.RepoURL == "" || settings.CloneDir == "" {
		t.Fatalf("defaults missing repo url or clone dir: %+v", settings)
	}
	if settings.StandardPackage == settings.ElectronPackage {
		t.Fatalf("variant packages must differ, both %q", settings.StandardPackage)
	}
	if settings.Variant != "" {
		t.Fatalf("defaults must not force a variant, got %q", settings.Variant)
	}
}

func TestLoadExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "repo_url = \"https://example.com/packaging.git\"\nvariant = \"electron\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	settings, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if settings.RepoURL != "https://example.com/packaging.git" {
		t.Fatalf("repo url not taken from file: %q", settings.RepoURL)
	}
	if settings.Variant != "electron" {
		t.Fatalf("variant not taken from file: %q", settings.Variant)
	}
	// Fields absent from the file keep their defaults.
	if settings.StandardPackage != Defaults().StandardPackage {
		t.Fatalf("standard package lost its default: %q", settings.StandardPackage)
	}
}

func TestLoadExplicitFileMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Fatalf("expected error for missing explicit config file")
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("repo_url = [broken"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), path) {
		t.Fatalf("expected parse error naming %s, got %v", path, err)
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	env := map[string]string{
		EnvPrefix + "REPO_URL": "https://example.com/override.git",
		EnvPrefix + "VARIANT":  "standard",
		EnvPrefix + "CLONE_DIR": "  ",
	}
	settings := Defaults()
	settings.applyEnv(func(key string) (string, bool) {
		value, ok := env[key]
		return value, ok
	})

	if settings.RepoURL != "https://example.com/override.git" {
		t.Fatalf("env repo url not applied: %q", settings.RepoURL)
	}
	if settings.Variant != "standard" {
		t.Fatalf("env variant not applied: %q", settings.Variant)
	}
	// Blank values do not clobber defaults.
	if settings.CloneDir != Defaults().CloneDir {
		t.Fatalf("blank env value clobbered clone dir: %q", settings.CloneDir)
	}
}

func TestLoadEnvBeatsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("standard_package = \"from-file\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(EnvPrefix+"PKG_STANDARD", "from-env")

	settings, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if settings.StandardPackage != "from-env" {
		t.Fatalf("environment should take precedence over the file, got %q", settings.StandardPackage)
	}
}
