package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.WeekStartDay != "monday" {
		t.Errorf("WeekStartDay = %q, expected \"monday\"", cfg.WeekStartDay)
	}
	if cfg.Timezone != "Local" {
		t.Errorf("Timezone = %q, expected \"Local\"", cfg.Timezone)
	}
	if cfg.DataDir != "" {
		t.Errorf("DataDir = %q, expected empty", cfg.DataDir)
	}
}

func TestLoadOrDefault_MissingFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.toml")

	cfg, err := LoadOrDefault(path)
	if err != nil {
		t.Fatalf("LoadOrDefault failed: %v", err)
	}

	if cfg != DefaultConfig() {
		t.Errorf("Expected defaults for missing file, got %+v", cfg)
	}
}

func TestLoadOrDefault_ValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.toml")

	content := `week_start_day = "sunday"
timezone = "Local"
theme = "dracula"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadOrDefault(path)
	if err != nil {
		t.Fatalf("LoadOrDefault failed: %v", err)
	}

	if cfg.WeekStartDay != "sunday" {
		t.Errorf("WeekStartDay = %q, expected \"sunday\"", cfg.WeekStartDay)
	}
	if cfg.Theme != "dracula" {
		t.Errorf("Theme = %q, expected \"dracula\"", cfg.Theme)
	}
}

func TestLoadOrDefault_PartialFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.toml")

	if err := os.WriteFile(path, []byte(`theme = "nord"`), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadOrDefault(path)
	if err != nil {
		t.Fatalf("LoadOrDefault failed: %v", err)
	}

	// Unset keys inherit defaults
	if cfg.WeekStartDay != "monday" {
		t.Errorf("WeekStartDay = %q, expected default \"monday\"", cfg.WeekStartDay)
	}
	if cfg.Theme != "nord" {
		t.Errorf("Theme = %q, expected \"nord\"", cfg.Theme)
	}
}

func TestLoadOrDefault_MalformedFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.toml")

	if err := os.WriteFile(path, []byte("week_start_day = [broken"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	_, err := LoadOrDefault(path)
	if err == nil {
		t.Error("Expected error for malformed config file")
	}
}

func TestNormalize(t *testing.T) {
	cfg := Config{
		WeekStartDay: "  SUNDAY ",
		Timezone:     " Local ",
		Theme:        "Dracula",
	}
	cfg.Normalize()

	if cfg.WeekStartDay != "sunday" {
		t.Errorf("WeekStartDay = %q, expected \"sunday\"", cfg.WeekStartDay)
	}
	if cfg.Timezone != "Local" {
		t.Errorf("Timezone = %q, expected \"Local\"", cfg.Timezone)
	}
	if cfg.Theme != "dracula" {
		t.Errorf("Theme = %q, expected \"dracula\"", cfg.Theme)
	}
}

func TestNormalize_EmptyFields(t *testing.T) {
	cfg := Config{}
	cfg.Normalize()

	if cfg.WeekStartDay != "monday" {
		t.Errorf("Empty WeekStartDay should normalize to \"monday\", got %q", cfg.WeekStartDay)
	}
	if cfg.Timezone != "Local" {
		t.Errorf("Empty Timezone should normalize to \"Local\", got %q", cfg.Timezone)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		expectErr bool
	}{
		{"defaults", DefaultConfig(), false},
		{"sunday start", Config{WeekStartDay: "sunday", Timezone: "Local"}, false},
		{"valid IANA timezone", Config{WeekStartDay: "monday", Timezone: "Europe/Oslo"}, false},
		{"invalid week start", Config{WeekStartDay: "friday", Timezone: "Local"}, true},
		{"invalid timezone", Config{WeekStartDay: "monday", Timezone: "Mars/Olympus"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.expectErr && err == nil {
				t.Errorf("Expected validation error for %+v", tt.cfg)
			}
			if !tt.expectErr && err != nil {
				t.Errorf("Unexpected validation error: %v", err)
			}
		})
	}
}

func TestGenerateSampleConfig(t *testing.T) {
	sample := GenerateSampleConfig()

	for _, key := range []string{"week_start_day", "timezone", "theme", "data_dir"} {
		if !strings.Contains(sample, key) {
			t.Errorf("Sample config missing key %q", key)
		}
	}
}
