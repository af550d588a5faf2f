package service

import (
	"github.com/solheim/moodlog/internal/config"
	"github.com/solheim/moodlog/internal/sentiment"
	"github.com/solheim/moodlog/internal/storage"
)

// Services holds all service instances used by the application
type Services struct {
	Journal *JournalService
	Stats   *StatsService
	Config  *ConfigService
}

// NewServices creates a new Services instance with default paths.
// A corrupt journal file surfaces as storage.ErrRead here; callers
// decide whether to offer reinitialization.
func NewServices(scorer sentiment.Scorer) (*Services, error) {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, err
	}

	storagePath, err := storage.GetStoragePath(cfg.DataDir)
	if err != nil {
		return nil, err
	}

	store, err := storage.Open(storagePath)
	if err != nil {
		return nil, err
	}

	return NewServicesWithStore(store, configPath, cfg, scorer), nil
}

// NewServicesWithStore creates a new Services instance around an
// already opened store (useful for testing and for recovery flows
// where the store was reinitialized).
func NewServicesWithStore(store *storage.Store, configPath string, cfg config.Config, scorer sentiment.Scorer) *Services {
	return &Services{
		Journal: NewJournalService(store, scorer, cfg),
		Stats:   NewStatsService(store, cfg),
		Config:  NewConfigService(configPath, cfg),
	}
}
