// Package config handles configuration loading and defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Default values.
const (
	DefaultDataFile = "tasks.json"
	DefaultLogLevel = "info"
)

// Config holds the full configuration for focusdo.
type Config struct {
	// DataFile is the path of the JSON file tasks are persisted to.
	DataFile string `toml:"data_file"`

	// LogLevel controls console log verbosity: debug, info, warn, error.
	LogLevel string `toml:"log_level"`
}

// Default returns a Config populated with default values.
func Default() Config {
	return Config{
		DataFile: DefaultDataFile,
		LogLevel: DefaultLogLevel,
	}
}

// Load reads configuration from the first config file found, falling back to
// defaults when none exists. Missing fields keep their default values.
func Load() (Config, error) {
	cfg := Default()

	path, err := findConfigFile()
	if err != nil || path == "" {
		return cfg, err
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.DataFile == "" {
		cfg.DataFile = DefaultDataFile
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	return cfg, nil
}

// findConfigFile checks ./focusdo.toml first, then the user config dir.
// Returns an empty path when no config file exists.
func findConfigFile() (string, error) {
	if _, err := os.Stat("focusdo.toml"); err == nil {
		return "focusdo.toml", nil
	}

	confDir, err := os.UserConfigDir()
	if err != nil {
		// No resolvable home; run on defaults.
		return "", nil
	}
	path := filepath.Join(confDir, "focusdo", "config.toml")
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	return "", nil
}
