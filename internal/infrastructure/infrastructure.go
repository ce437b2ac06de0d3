// Package infrastructure assembles the shared runtime dependencies that
// domain systems are built on: lifecycle coordination, structured logging,
// the database pool, and blob storage.
package infrastructure

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pathlight-health/casebook/internal/config"
	"github.com/pathlight-health/casebook/pkg/database"
	"github.com/pathlight-health/casebook/pkg/lifecycle"
	"github.com/pathlight-health/casebook/pkg/storage"
)

// Infrastructure holds the core systems required by all domain modules.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Database  database.System
	Storage   storage.System
}

// New builds the infrastructure from application configuration. Systems are
// initialized but not started; call Start once construction succeeds.
func New(cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil)).
		With("service", "casebook")

	db, err := database.New(&cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	store, err := storage.New(&cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("storage init failed: %w", err)
	}

	return &Infrastructure{
		Lifecycle: lc,
		Logger:    logger,
		Database:  db,
		Storage:   store,
	}, nil
}

// Start registers the database and storage systems with the lifecycle
// coordinator so they participate in startup and shutdown ordering.
func (i *Infrastructure) Start() error {
	if err := i.Database.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("database start failed: %w", err)
	}
	if err := i.Storage.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("storage start failed: %w", err)
	}
	return nil
}
