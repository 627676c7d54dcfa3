// Package config provides centralized configuration for encore runtime values.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/adrg/xdg"
	"github.com/creasty/defaults"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// RuntimeConfig holds all runtime configuration values.
type RuntimeConfig struct {
	Storage  StorageConfig  `koanf:"storage"`
	Playlist PlaylistConfig `koanf:"playlist"`
	Output   OutputConfig   `koanf:"output"`
	Login    LoginConfig    `koanf:"login"`
}

// StorageConfig holds storage-related configuration.
type StorageConfig struct {
	// Path is the database directory. Empty means the XDG data directory.
	// ":memory:" keeps everything in memory for the process lifetime.
	Path string `koanf:"path"`

	// MinFreeSpace is the minimum free space required to open the database.
	// Default: 10MB (10 * 1024 * 1024 bytes)
	MinFreeSpace uint64 `koanf:"min_free_space" default:"10485760"`

	// MinFreeSpaceWarning is the threshold for warning about low disk space.
	// Default: 50MB (50 * 1024 * 1024 bytes)
	MinFreeSpaceWarning uint64 `koanf:"min_free_space_warning" default:"52428800"`
}

// PlaylistConfig holds playlist history configuration.
type PlaylistConfig struct {
	// HistoryLimit bounds the undo stack. 0 keeps every snapshot.
	// Default: 100
	HistoryLimit int `koanf:"history_limit" default:"100"`
}

// OutputConfig holds output defaults used when flags are not given.
type OutputConfig struct {
	// Format is cli, json or plain. Default: cli
	Format string `koanf:"format" default:"cli"`
	// Color is auto, always or never. Default: auto
	Color string `koanf:"color" default:"auto"`
}

// LoginConfig holds credential handling configuration.
type LoginConfig struct {
	// BcryptCost is the work factor for password hashes. Default: 10
	BcryptCost int `koanf:"bcrypt_cost" default:"10"`
}

// DefaultRuntimeConfig returns the default runtime configuration, taken from
// the default struct tags.
func DefaultRuntimeConfig() *RuntimeConfig {
	cfg := &RuntimeConfig{}
	if err := defaults.Set(cfg); err != nil {
		panic("config: bad default tag: " + err.Error())
	}
	return cfg
}

// Global holds the global runtime configuration instance.
// It is initialized with defaults and environment overrides; Load layers
// config files underneath the environment.
var Global = initGlobal()

// initGlobal initializes the global config with defaults and environment overrides.
func initGlobal() *RuntimeConfig {
	cfg := DefaultRuntimeConfig()
	cfg.loadFromEnv()
	return cfg
}

// FilePaths returns the config files Load reads, lowest priority first.
func FilePaths() []string {
	return []string{
		filepath.Join(xdg.ConfigHome, "encore", "config.toml"),
		"encore.toml",
	}
}

// Load builds a config from defaults, then each existing file in paths
// (later files win), then ENCORE_* environment variables.
func Load(paths ...string) (*RuntimeConfig, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, err
		}
	}

	cfg := DefaultRuntimeConfig()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.loadFromEnv()
	cfg.normalize()
	return cfg, nil
}

// normalize replaces out-of-range values with defaults.
func (c *RuntimeConfig) normalize() {
	defaults := DefaultRuntimeConfig()
	if c.Playlist.HistoryLimit < 0 {
		c.Playlist.HistoryLimit = defaults.Playlist.HistoryLimit
	}
	if c.Login.BcryptCost < 4 || c.Login.BcryptCost > 31 {
		c.Login.BcryptCost = defaults.Login.BcryptCost
	}
	switch c.Output.Format {
	case "cli", "json", "plain":
	default:
		c.Output.Format = defaults.Output.Format
	}
	switch c.Output.Color {
	case "auto", "always", "never":
	default:
		c.Output.Color = defaults.Output.Color
	}
}

// loadFromEnv loads configuration overrides from environment variables.
func (c *RuntimeConfig) loadFromEnv() {
	// Storage configuration
	if v := os.Getenv("ENCORE_DATABASE"); v != "" {
		c.Storage.Path = v
	}
	if v := os.Getenv("ENCORE_MIN_FREE_SPACE"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.Storage.MinFreeSpace = n
		}
	}
	if v := os.Getenv("ENCORE_MIN_FREE_SPACE_WARNING"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.Storage.MinFreeSpaceWarning = n
		}
	}

	// Playlist configuration
	if v := os.Getenv("ENCORE_HISTORY_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			c.Playlist.HistoryLimit = n
		}
	}

	// Output configuration
	if v := os.Getenv("ENCORE_FORMAT"); v != "" {
		c.Output.Format = v
	}
	if v := os.Getenv("ENCORE_COLOR"); v != "" {
		c.Output.Color = v
	}

	// Login configuration
	if v := os.Getenv("ENCORE_BCRYPT_COST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Login.BcryptCost = n
		}
	}
}

// Reset resets the configuration to defaults.
// This is primarily useful for testing.
func (c *RuntimeConfig) Reset() {
	defaults := DefaultRuntimeConfig()
	*c = *defaults
}
