// Package config loads the game's settings from an optional YAML file and
// the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Environment variables that override the file.
const (
	EnvDB      = "GANGWAR_DB"
	EnvSeed    = "GANGWAR_SEED"
	EnvContent = "GANGWAR_CONTENT"
)

// Config holds the application configuration.
type Config struct {
	DBPath     string `yaml:"db_path"`
	Seed       int64  `yaml:"seed"` // 0 seeds from the clock
	ContentDir string `yaml:"content_dir"`
	LogFile    string `yaml:"log_file"`
	Plain      bool   `yaml:"plain"`
}

// DefaultDir is where the database and config live when nothing else is set.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".gangwar"
	}
	return filepath.Join(home, ".gangwar")
}

// Default returns the built-in settings.
func Default() *Config {
	dir := DefaultDir()
	return &Config{
		DBPath:  filepath.Join(dir, "gangwar.db"),
		LogFile: filepath.Join(dir, "gangwar.log"),
	}
}

// Load reads path over the defaults, then applies environment overrides.
// An empty path or a missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config %s: %w", path, err)
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvDB); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv(EnvContent); v != "" {
		c.ContentDir = v
	}
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s must be an integer: %w", EnvSeed, err)
		}
		c.Seed = seed
	}
	return nil
}
