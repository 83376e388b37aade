// Package config provides configuration types and defaults for curator.
package config

import (
	"fmt"
	"os"
	"time"
)

// CacheConfig holds document cache options.
type CacheConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	TTL     time.Duration `mapstructure:"ttl"`
}

// WatchConfig holds spec directory watching options.
type WatchConfig struct {
	Debounce time.Duration `mapstructure:"debounce"`
}

// ProtectedConfig names handles to protect at load time.
type ProtectedConfig struct {
	// Undeletable handles can never be removed.
	Undeletable []string `mapstructure:"undeletable"`
	// Locked handles are removal-protected until explicitly unlocked.
	Locked []string `mapstructure:"locked"`
}

// Config holds all configuration options for curator.
type Config struct {
	// SpecDirs are the directories scanned for spec documents
	// (*.yaml, *.yml, *.json).
	SpecDirs []string `mapstructure:"spec_dirs"`

	// DefaultSpec optionally names a spec document installed as the
	// registry's default object after loading.
	DefaultSpec string `mapstructure:"default_spec"`

	Debug     bool            `mapstructure:"debug"`
	LogFile   string          `mapstructure:"log_file"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Watch     WatchConfig     `mapstructure:"watch"`
	Protected ProtectedConfig `mapstructure:"protected"`
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		SpecDirs: []string{"specs"},
		LogFile:  "curator.log",
		Cache: CacheConfig{
			Enabled: true,
			TTL:     10 * time.Minute,
		},
		Watch: WatchConfig{
			Debounce: 1 * time.Second,
		},
	}
}

// Validate checks the configuration is usable.
func (c *Config) Validate() error {
	if len(c.SpecDirs) == 0 {
		return fmt.Errorf("at least one spec directory must be configured")
	}
	for _, dir := range c.SpecDirs {
		info, err := os.Stat(dir)
		if err != nil {
			return fmt.Errorf("spec directory %s: %w", dir, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("spec directory %s is not a directory", dir)
		}
	}
	if c.Watch.Debounce <= 0 {
		return fmt.Errorf("watch debounce must be positive")
	}
	return nil
}
