// Package config loads the optional scenevault.yaml settings file used by the
// CLI and server binary.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the binary-level settings. Zero values fall back to defaults.
type Config struct {
	// DataDir is the directory collection documents live in.
	DataDir string `yaml:"data_dir"`

	// DebounceSeconds is the save quiescence window.
	DebounceSeconds int `yaml:"debounce_seconds"`

	// DefaultCollection overrides the sentinel collection name.
	DefaultCollection string `yaml:"default_collection"`

	// Listen is the address the HTTP admin surface binds to.
	Listen string `yaml:"listen"`

	// RedisAddr, when set, switches document storage to Redis.
	RedisAddr string `yaml:"redis_addr"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		DataDir:         ".scenevault",
		DebounceSeconds: 5,
		Listen:          ":8470",
	}
}

// Load reads a YAML config file, layering it over the defaults. A missing
// file is not an error; malformed YAML is.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.DebounceSeconds <= 0 {
		cfg.DebounceSeconds = Default().DebounceSeconds
	}
	if cfg.DataDir == "" {
		cfg.DataDir = Default().DataDir
	}
	return cfg, nil
}

// DebounceWindow returns the configured quiescence window as a duration.
func (c *Config) DebounceWindow() time.Duration {
	return time.Duration(c.DebounceSeconds) * time.Second
}
