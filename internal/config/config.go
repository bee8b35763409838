// Package config resolves the configuration directory, the optional config
// file and the database path.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	// AppName is the application directory name.
	AppName = "todosh"

	// ConfigFile is the optional TOML config filename inside the config dir.
	ConfigFile = "config.toml"

	// DefaultDatabase is the database path used when nothing overrides it.
	// Relative paths resolve against the working directory.
	DefaultDatabase = "data/db.csv"

	// EnvDatabase overrides the database path from the environment.
	EnvDatabase = "TODOSH_DB"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// Database is the CSV database path, before ~ and $VAR expansion.
	Database string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// fileConfig mirrors the keys accepted in config.toml.
type fileConfig struct {
	Database string `toml:"database"`
}

// New creates a Config with the default or specified config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/todosh or $HOME/.config/todosh.
//
// The database path is resolved in priority order:
// 1. DefaultDatabase
// 2. "database" in config.toml, if the file exists
// 3. the TODOSH_DB environment variable
// Command-line overrides are applied by the caller with SetDatabase.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	cfg := &Config{Dir: dir, Database: DefaultDatabase}

	if err := cfg.loadFile(); err != nil {
		return nil, err
	}
	if env := strings.TrimSpace(os.Getenv(EnvDatabase)); env != "" {
		cfg.Database = env
	}
	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// ConfigPath returns the path to the optional config file.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// SetDatabase overrides the database path. Empty values are ignored.
func (c *Config) SetDatabase(path string) {
	if strings.TrimSpace(path) != "" {
		c.Database = path
	}
}

// DatabasePath returns the database path with ~ and environment variables
// expanded.
func (c *Config) DatabasePath() string {
	return expandPath(c.Database)
}

func (c *Config) loadFile() error {
	var fc fileConfig
	_, err := toml.DecodeFile(c.ConfigPath(), &fc)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("loading config file %s: %w", c.ConfigPath(), err)
	}
	if strings.TrimSpace(fc.Database) != "" {
		c.Database = fc.Database
	}
	return nil
}

// expandPath expands a leading ~ and $VAR references.
func expandPath(p string) string {
	if p == "" {
		return p
	}
	expanded := os.ExpandEnv(p)
	if expanded == "~" || strings.HasPrefix(expanded, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return expanded
		}
		return filepath.Join(home, expanded[1:])
	}
	return expanded
}
