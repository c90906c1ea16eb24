package store

import (
	"context"
	"fmt"

	"github.com/Tanzeel8246/madrasa/internal/config"
	"github.com/Tanzeel8246/madrasa/internal/logger"
)

// Storages groups the client-side storage repositories: the offline cache
// of remote collections and the durable queue of pending mutations. Both
// live in the same SQLite database file.
type Storages struct {
	// Cache is the per-collection snapshot store read by the UI while the
	// remote store is unreachable.
	Cache LocalCache

	// Queue is the durable FIFO of mutations awaiting replay.
	Queue SyncQueue
}

// NewStorages initialises the client storage layer using the supplied
// configuration and logger. It opens the SQLite database at cfg.DB.DSN
// (creating the file if needed), runs pending schema migrations via
// [DB.Migrate], and wires fresh cache and queue repositories.
func NewStorages(cfg config.ClientStorage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		Cache: NewCacheRepository(db, logger),
		Queue: NewQueueRepository(db, logger),
	}, nil
}
