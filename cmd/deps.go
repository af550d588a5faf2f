package cmd

import (
	"io"
	"os"

	"github.com/solheim/moodlog/internal/config"
	"github.com/solheim/moodlog/internal/sentiment"
	"github.com/solheim/moodlog/internal/service"
	"github.com/solheim/moodlog/internal/storage"
)

// Deps holds external dependencies for CLI commands, enabling testability.
type Deps struct {
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
	Exit   func(code int)

	// Services constructs the service layer. Called once per command
	// invocation; tests replace this with a closure over a fixed store.
	Services func() (*service.Services, error)

	// StoragePath resolves the journal file path without opening it.
	// Used by commands that must work even when the journal is corrupt.
	StoragePath func() (string, error)
}

// DefaultDeps returns the default production dependencies.
func DefaultDeps() *Deps {
	return &Deps{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Stdin:  os.Stdin,
		Exit:   os.Exit,
		Services: func() (*service.Services, error) {
			scorer, err := sentiment.NewVADER()
			if err != nil {
				return nil, err
			}
			return service.NewServices(scorer)
		},
		StoragePath: func() (string, error) {
			configPath, err := config.GetConfigPath()
			if err != nil {
				return "", err
			}
			cfg, err := config.LoadOrDefault(configPath)
			if err != nil {
				cfg = config.DefaultConfig()
			}
			return storage.GetStoragePath(cfg.DataDir)
		},
	}
}

// deps is the global dependencies instance used by commands.
// In production, this is DefaultDeps(). Tests can replace it.
var deps = DefaultDeps()

// SetDeps sets the global dependencies (for testing).
func SetDeps(d *Deps) {
	deps = d
}

// ResetDeps resets dependencies to defaults (for testing cleanup).
func ResetDeps() {
	deps = DefaultDeps()
}
