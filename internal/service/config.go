package service

import (
	"fmt"
	"os"

	"github.com/solheim/moodlog/internal/config"
)

// ConfigService holds the loaded configuration and knows where its
// file lives, so callers never re-resolve the path.
type ConfigService struct {
	configPath string
	config     config.Config
}

func NewConfigService(configPath string, cfg config.Config) *ConfigService {
	return &ConfigService{
		configPath: configPath,
		config:     cfg,
	}
}

// Get returns the configuration as loaded at startup (or last Reload).
func (s *ConfigService) Get() config.Config {
	return s.config
}

// GetPath returns where the config file is (or would be) on disk.
func (s *ConfigService) GetPath() string {
	return s.configPath
}

// Exists reports whether a config file is present on disk. False means
// the defaults are in effect.
func (s *ConfigService) Exists() bool {
	_, err := os.Stat(s.configPath)
	return err == nil
}

// Init writes a commented sample config. Refuses to overwrite an
// existing file so user edits are never clobbered.
func (s *ConfigService) Init() error {
	if s.Exists() {
		return fmt.Errorf("config file already exists at %s", s.configPath)
	}

	sample := config.GenerateSampleConfig()
	if err := os.WriteFile(s.configPath, []byte(sample), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Reload re-reads the file and replaces the held configuration.
func (s *ConfigService) Reload() error {
	cfg, err := config.LoadOrDefault(s.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	s.config = cfg
	return nil
}
