package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Tanzeel8246/madrasa/internal/adapter"
	"github.com/Tanzeel8246/madrasa/internal/logger"
	"github.com/Tanzeel8246/madrasa/internal/store"
	"github.com/Tanzeel8246/madrasa/models"
)

type refreshService struct {
	remote adapter.RemoteStore
	cache  store.LocalCache
	logger *logger.Logger
}

// NewRefreshService creates the coordinator that mirrors remote collections
// into the local cache.
func NewRefreshService(remote adapter.RemoteStore, cache store.LocalCache, log *logger.Logger) RefreshService {
	return &refreshService{remote: remote, cache: cache, logger: log}
}

// RefreshAll implements [RefreshService]. Tracked collections are refreshed
// independently; one failing fetch does not stop the others. The returned
// error joins every per-collection failure.
func (s *refreshService) RefreshAll(ctx context.Context) error {
	var errs error
	for _, table := range models.TrackedCollections() {
		if err := s.RefreshOne(ctx, table); err != nil {
			logger.FromContext(ctx).Error().Err(err).
				Str("collection", table).
				Msg("refresh collection failed")
			errs = errors.Join(errs, err)
		}
	}
	return errs
}

// RefreshOne implements [RefreshService]. The fetch happens before the clear:
// if the server cannot be reached the cached snapshot survives untouched.
func (s *refreshService) RefreshOne(ctx context.Context, table string) error {
	rows, err := s.remote.SelectAll(ctx, table)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", table, err)
	}

	if err = s.cache.Clear(ctx, table); err != nil {
		return fmt.Errorf("clear %s: %w", table, err)
	}

	for _, row := range rows {
		key := row.ID()
		if key == "" {
			logger.FromContext(ctx).Warn().
				Str("collection", table).
				Msg("skipping remote row without id")
			continue
		}
		if err = s.cache.Put(ctx, table, key, row); err != nil {
			return fmt.Errorf("cache %s/%s: %w", table, key, err)
		}
	}

	logger.FromContext(ctx).Debug().
		Str("collection", table).
		Int("rows", len(rows)).
		Msg("collection refreshed")

	return nil
}
