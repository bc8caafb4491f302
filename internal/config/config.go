// Package config loads the optional user-level configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config captures the resolution settings a user can pin instead of
// passing flags on every invocation.
type Config struct {
	// ScriptDir points at a directory of pre-extracted scripts and
	// bypasses extraction entirely when set.
	ScriptDir string `yaml:"script_dir"`

	// SearchDir is checked for pre-installed scripts when no cache
	// location is usable.
	SearchDir string `yaml:"search_dir"`
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{}
}

// DefaultPath returns the standard config file location,
// ~/.xdgkit/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("detect user home: %w", err)
	}
	return filepath.Join(home, ".xdgkit", "config.yaml"), nil
}

// Load reads the config file at path. A missing file yields the
// defaults; a malformed file is an error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
