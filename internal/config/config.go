// Package config handles loading and validating the TOML configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/solheim/moodlog/internal/osutil"
)

const (
	// AppName is the application name used for config directory
	AppName = "moodlog"
	// ConfigFile is the name of the TOML configuration file
	ConfigFile = "config.toml"
)

// Config represents the application configuration
type Config struct {
	// WeekStartDay defines which day starts the week (monday or sunday),
	// used for weekly trend bucketing
	WeekStartDay string `toml:"week_start_day"`
	// Timezone defines the timezone for time operations (IANA timezone name, e.g., "America/New_York")
	Timezone string `toml:"timezone"`
	// Theme is the TUI color theme name
	Theme string `toml:"theme"`
	// DataDir overrides the directory holding the journal file (default: config directory)
	DataDir string `toml:"data_dir"`
}

// DefaultConfig returns a Config with sensible defaults.
// - week_start_day: "monday" (ISO 8601 standard)
// - timezone: "Local" (use system local timezone)
// - theme: "" (TUI default)
// - data_dir: "" (journal lives next to the config file)
func DefaultConfig() Config {
	return Config{
		WeekStartDay: "monday",
		Timezone:     "Local",
		Theme:        "",
		DataDir:      "",
	}
}

// GetConfigPath returns the path to the config file.
// Uses os.UserConfigDir() for cross-platform XDG-compliant config directory.
// Creates the config directory if it doesn't exist.
func GetConfigPath() (string, error) {
	configDir, err := osutil.Provider.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)

	if err := osutil.Provider.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, ConfigFile), nil
}

// LoadOrDefault loads the config file at path, falling back to defaults
// for a missing file. A present but unparsable file is an error; partial
// files inherit defaults for unset keys.
func LoadOrDefault(path string) (Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), err
	}

	return cfg, nil
}

// Normalize lowercases and trims fields that are compared case-insensitively.
func (c *Config) Normalize() {
	c.WeekStartDay = strings.ToLower(strings.TrimSpace(c.WeekStartDay))
	c.Timezone = strings.TrimSpace(c.Timezone)
	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))
	c.DataDir = strings.TrimSpace(c.DataDir)
	if c.WeekStartDay == "" {
		c.WeekStartDay = "monday"
	}
	if c.Timezone == "" {
		c.Timezone = "Local"
	}
}

// Validate checks that config values are usable.
func (c Config) Validate() error {
	if c.WeekStartDay != "monday" && c.WeekStartDay != "sunday" {
		return fmt.Errorf("invalid week_start_day %q: must be \"monday\" or \"sunday\"", c.WeekStartDay)
	}

	if c.Timezone != "Local" {
		if _, err := time.LoadLocation(c.Timezone); err != nil {
			return fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
		}
	}

	return nil
}

// GenerateSampleConfig returns a commented sample config file.
func GenerateSampleConfig() string {
	return `# moodlog configuration file

# Week start day for weekly trend bucketing: "monday" or "sunday"
week_start_day = "monday"

# Timezone: IANA timezone name (e.g., "America/New_York") or "Local"
timezone = "Local"

# TUI color theme (run 'moodlog tui' and press ? for available themes)
#theme = "dracula"

# Directory holding the journal file (default: config directory)
#data_dir = "/path/to/journal/dir"
`
}
