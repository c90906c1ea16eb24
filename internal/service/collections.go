package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/Tanzeel8246/madrasa/internal/adapter"
	"github.com/Tanzeel8246/madrasa/internal/logger"
	"github.com/Tanzeel8246/madrasa/internal/store"
	"github.com/Tanzeel8246/madrasa/models"
)

type collectionService struct {
	cache    store.LocalCache
	queue    store.SyncQueue
	remote   adapter.RemoteStore
	refresh  RefreshService
	state    *SyncState
	notifier Notifier
	logger   *logger.Logger

	known   map[string]struct{}
	tempSeq atomic.Int64
}

// NewCollectionService creates the read/write entry point for collection
// records.
func NewCollectionService(
	storages *store.Storages,
	remote adapter.RemoteStore,
	refresh RefreshService,
	state *SyncState,
	notifier Notifier,
	log *logger.Logger,
) CollectionService {
	known := make(map[string]struct{})
	for _, table := range models.KnownTables() {
		known[table] = struct{}{}
	}

	svc := &collectionService{
		cache:    storages.Cache,
		queue:    storages.Queue,
		remote:   remote,
		refresh:  refresh,
		state:    state,
		notifier: notifier,
		logger:   log,
		known:    known,
	}
	// seeding with wall-clock millis keeps temp ids unique across restarts
	svc.tempSeq.Store(time.Now().UnixMilli())

	return svc
}

// List implements [CollectionService]. Online, the collection is fetched from
// the remote store and its cached copy refreshed in the same call; when the
// fetch reveals the server is unreachable, the state flips to offline and the
// cached snapshot is served instead.
func (s *collectionService) List(ctx context.Context, table string) ([]models.Row, error) {
	if err := s.checkTable(table); err != nil {
		return nil, err
	}

	if s.state.Online() {
		err := s.refresh.RefreshOne(ctx, table)
		switch {
		case err == nil:
		case adapter.IsUnavailable(err):
			s.state.SetOnline(false)
			s.notifier.WentOffline()
		default:
			return nil, err
		}
	}

	return s.cache.GetAll(ctx, table)
}

// Get implements [CollectionService].
func (s *collectionService) Get(ctx context.Context, table, id string) (models.Row, error) {
	if err := s.checkTable(table); err != nil {
		return nil, err
	}
	return s.cache.Get(ctx, table, id)
}

// Create implements [CollectionService].
func (s *collectionService) Create(ctx context.Context, table string, row models.Row) (models.Row, error) {
	if err := s.checkTable(table); err != nil {
		return nil, err
	}

	if s.state.Online() {
		stored, err := s.remote.Insert(ctx, table, row)
		if err != nil {
			if adapter.IsUnavailable(err) {
				s.state.SetOnline(false)
				s.notifier.WentOffline()
			}
			return nil, fmt.Errorf("create %s: %w", table, err)
		}
		if key := stored.ID(); key != "" {
			if err = s.cache.Put(ctx, table, key, stored); err != nil {
				return nil, fmt.Errorf("cache created record %s/%s: %w", table, key, err)
			}
		}
		return stored, nil
	}

	local := make(models.Row, len(row)+1)
	for k, v := range row {
		local[k] = v
	}
	local["id"] = s.nextTempID()

	if err := s.cache.Put(ctx, table, local.ID(), local); err != nil {
		return nil, fmt.Errorf("cache offline record %s: %w", table, err)
	}
	if err := s.enqueue(ctx, table, models.OpInsert, local); err != nil {
		return nil, err
	}

	s.notifier.SavedOffline(table)
	return local, nil
}

// Update implements [CollectionService]. Offline, the partial update is
// merged into the cached record so reads immediately reflect it, and the
// queued payload carries the id for replay.
func (s *collectionService) Update(ctx context.Context, table, id string, row models.Row) error {
	if err := s.checkTable(table); err != nil {
		return err
	}

	if s.state.Online() {
		confirmed, err := s.remote.Update(ctx, table, id, row)
		if err != nil {
			if adapter.IsUnavailable(err) {
				s.state.SetOnline(false)
				s.notifier.WentOffline()
			}
			return fmt.Errorf("update %s/%s: %w", table, id, err)
		}
		if key := confirmed.ID(); key != "" {
			if err = s.cache.Put(ctx, table, key, confirmed); err != nil {
				return fmt.Errorf("cache updated record %s/%s: %w", table, key, err)
			}
			return nil
		}
		// no confirmed representation (the id matched nothing); fall back to
		// a local merge so reads still reflect the request
		s.mergeIntoCache(ctx, table, id, row)
		return nil
	}

	s.mergeIntoCache(ctx, table, id, row)

	payload := make(models.Row, len(row)+1)
	for k, v := range row {
		payload[k] = v
	}
	payload["id"] = id

	if err := s.enqueue(ctx, table, models.OpUpdate, payload); err != nil {
		return err
	}

	s.notifier.SavedOffline(table)
	return nil
}

// Delete implements [CollectionService].
func (s *collectionService) Delete(ctx context.Context, table, id string) error {
	if err := s.checkTable(table); err != nil {
		return err
	}

	if s.state.Online() {
		if err := s.remote.Delete(ctx, table, id); err != nil {
			if adapter.IsUnavailable(err) {
				s.state.SetOnline(false)
				s.notifier.WentOffline()
			}
			return fmt.Errorf("delete %s/%s: %w", table, id, err)
		}
		if err := s.cache.Delete(ctx, table, id); err != nil {
			return fmt.Errorf("drop cached record %s/%s: %w", table, id, err)
		}
		return nil
	}

	if err := s.cache.Delete(ctx, table, id); err != nil {
		return fmt.Errorf("drop cached record %s/%s: %w", table, id, err)
	}
	if err := s.enqueue(ctx, table, models.OpDelete, models.Row{"id": id}); err != nil {
		return err
	}

	s.notifier.SavedOffline(table)
	return nil
}

func (s *collectionService) enqueue(ctx context.Context, table string, op models.Operation, payload models.Row) error {
	if _, err := s.queue.Enqueue(ctx, table, op, payload); err != nil {
		return fmt.Errorf("queue offline %s on %s: %w", op, table, err)
	}

	pending, err := s.queue.Count(ctx)
	if err != nil {
		return fmt.Errorf("count sync queue: %w", err)
	}
	s.state.SetPending(pending)

	logger.FromContext(ctx).Info().
		Str("collection", table).
		Str("operation", string(op)).
		Int("pending", pending).
		Msg("mutation queued for replay")

	return nil
}

func (s *collectionService) mergeIntoCache(ctx context.Context, table, id string, row models.Row) {
	log := logger.FromContext(ctx)

	existing, err := s.cache.Get(ctx, table, id)
	if err != nil {
		existing = models.Row{"id": id}
	}
	for k, v := range row {
		existing[k] = v
	}

	if err = s.cache.Put(ctx, table, id, existing); err != nil {
		log.Error().Err(err).
			Str("collection", table).
			Str("id", id).
			Msg("failed to merge update into cache")
	}
}

func (s *collectionService) checkTable(table string) error {
	if _, ok := s.known[table]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCollection, table)
	}
	return nil
}

func (s *collectionService) nextTempID() string {
	return fmt.Sprintf("%s%d", models.TempIDPrefix, s.tempSeq.Add(1))
}
