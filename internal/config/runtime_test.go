package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultRuntimeConfig(t *testing.T) {
	cfg := DefaultRuntimeConfig()

	// Test storage defaults
	if cfg.Storage.Path != "" {
		t.Errorf("expected Storage.Path to be empty, got %q", cfg.Storage.Path)
	}
	if cfg.Storage.MinFreeSpace != 10*1024*1024 {
		t.Errorf("expected Storage.MinFreeSpace = 10MB, got %d", cfg.Storage.MinFreeSpace)
	}
	if cfg.Storage.MinFreeSpaceWarning != 50*1024*1024 {
		t.Errorf("expected Storage.MinFreeSpaceWarning = 50MB, got %d", cfg.Storage.MinFreeSpaceWarning)
	}

	// Test playlist defaults
	if cfg.Playlist.HistoryLimit != 100 {
		t.Errorf("expected Playlist.HistoryLimit = 100, got %d", cfg.Playlist.HistoryLimit)
	}

	// Test output defaults
	if cfg.Output.Format != "cli" {
		t.Errorf("expected Output.Format = cli, got %q", cfg.Output.Format)
	}
	if cfg.Output.Color != "auto" {
		t.Errorf("expected Output.Color = auto, got %q", cfg.Output.Color)
	}

	// Test login defaults
	if cfg.Login.BcryptCost != 10 {
		t.Errorf("expected Login.BcryptCost = 10, got %d", cfg.Login.BcryptCost)
	}
}

func TestGlobalConfigExists(t *testing.T) {
	if Global == nil {
		t.Fatal("Global config should not be nil")
	}
}

func TestConfigReset(t *testing.T) {
	// Modify global config
	Global.Playlist.HistoryLimit = 3

	// Reset
	Global.Reset()

	// Verify it's back to defaults
	if Global.Playlist.HistoryLimit != 100 {
		t.Errorf("expected Playlist.HistoryLimit = 100 after reset, got %d", Global.Playlist.HistoryLimit)
	}
}

func TestConfigLoadFromEnv(t *testing.T) {
	t.Setenv("ENCORE_DATABASE", ":memory:")
	t.Setenv("ENCORE_HISTORY_LIMIT", "5")
	t.Setenv("ENCORE_FORMAT", "json")
	t.Setenv("ENCORE_BCRYPT_COST", "12")

	cfg := DefaultRuntimeConfig()
	cfg.loadFromEnv()

	if cfg.Storage.Path != ":memory:" {
		t.Errorf("expected Storage.Path = :memory: from env, got %q", cfg.Storage.Path)
	}
	if cfg.Playlist.HistoryLimit != 5 {
		t.Errorf("expected Playlist.HistoryLimit = 5 from env, got %d", cfg.Playlist.HistoryLimit)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("expected Output.Format = json from env, got %q", cfg.Output.Format)
	}
	if cfg.Login.BcryptCost != 12 {
		t.Errorf("expected Login.BcryptCost = 12 from env, got %d", cfg.Login.BcryptCost)
	}
}

func TestConfigLoadFromEnvInvalidValues(t *testing.T) {
	t.Setenv("ENCORE_HISTORY_LIMIT", "-1")
	t.Setenv("ENCORE_MIN_FREE_SPACE", "not-a-number")

	cfg := DefaultRuntimeConfig()
	cfg.loadFromEnv()

	// Verify defaults are kept when env values are invalid
	if cfg.Playlist.HistoryLimit != 100 {
		t.Errorf("expected Playlist.HistoryLimit = 100 (default), got %d", cfg.Playlist.HistoryLimit)
	}
	if cfg.Storage.MinFreeSpace != 10*1024*1024 {
		t.Errorf("expected Storage.MinFreeSpace = 10MB (default), got %d", cfg.Storage.MinFreeSpace)
	}
}

func TestLoadLayersFilesThenEnv(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "config.toml")
	local := filepath.Join(dir, "encore.toml")

	writeFile(t, base, `
[playlist]
history_limit = 20

[output]
format = "plain"
color = "never"
`)
	writeFile(t, local, `
[playlist]
history_limit = 30
`)
	t.Setenv("ENCORE_FORMAT", "json")

	cfg, err := Load(base, local, filepath.Join(dir, "missing.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Playlist.HistoryLimit != 30 {
		t.Errorf("expected later file to win, got HistoryLimit = %d", cfg.Playlist.HistoryLimit)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("expected env to override files, got Format = %q", cfg.Output.Format)
	}
	if cfg.Output.Color != "never" {
		t.Errorf("expected Color = never from file, got %q", cfg.Output.Color)
	}
	if cfg.Login.BcryptCost != 10 {
		t.Errorf("expected untouched defaults to survive, got BcryptCost = %d", cfg.Login.BcryptCost)
	}
}

func TestLoadNormalizesBadValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	writeFile(t, path, `
[output]
format = "yaml"

[login]
bcrypt_cost = 99
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Output.Format != "cli" {
		t.Errorf("expected unknown format to fall back to cli, got %q", cfg.Output.Format)
	}
	if cfg.Login.BcryptCost != 10 {
		t.Errorf("expected out-of-range cost to fall back to 10, got %d", cfg.Login.BcryptCost)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, "[playlist\nhistory_limit = ")

	if _, err := Load(path); err == nil {
		t.Error("expected an error for malformed TOML")
	}
}

func TestFilePaths(t *testing.T) {
	paths := FilePaths()
	if len(paths) != 2 {
		t.Fatalf("expected 2 config paths, got %d", len(paths))
	}
	if filepath.Base(paths[0]) != "config.toml" || paths[1] != "encore.toml" {
		t.Errorf("unexpected config paths: %v", paths)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
