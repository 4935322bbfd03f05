// Package config handles configuration loading and defaults.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Default values.
const (
	DefaultAddr     = ":8080"
	DefaultLogLevel = "info"
)

// Config holds the full configuration for the todo server.
type Config struct {
	// Addr is the TCP address the HTTP server listens on.
	Addr string `toml:"addr"`

	// Seed preloads the store with the sample todos on startup.
	Seed bool `toml:"seed"`

	// LogLevel is a logrus level name (debug, info, warn, error).
	LogLevel string `toml:"log_level"`
}

// Default returns a Config populated with default values.
func Default() *Config {
	return &Config{
		Addr:     DefaultAddr,
		Seed:     true,
		LogLevel: DefaultLogLevel,
	}
}

// Load reads the TOML configuration file at path. A missing file is not an
// error: defaults are returned. Values present in the file override defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}
