package service

import (
	"context"
	"fmt"

	"github.com/Tanzeel8246/madrasa/internal/adapter"
	"github.com/Tanzeel8246/madrasa/internal/logger"
	"github.com/Tanzeel8246/madrasa/internal/store"
	"github.com/Tanzeel8246/madrasa/models"
)

type replayEngine struct {
	queue    store.SyncQueue
	cache    store.LocalCache
	remote   adapter.RemoteStore
	refresh  RefreshService
	state    *SyncState
	notifier Notifier
	logger   *logger.Logger
}

// NewReplayEngine creates the engine that pushes queued offline mutations to
// the remote store.
func NewReplayEngine(
	queue store.SyncQueue,
	cache store.LocalCache,
	remote adapter.RemoteStore,
	refresh RefreshService,
	state *SyncState,
	notifier Notifier,
	log *logger.Logger,
) SyncEngine {
	return &replayEngine{
		queue:    queue,
		cache:    cache,
		remote:   remote,
		refresh:  refresh,
		state:    state,
		notifier: notifier,
		logger:   log,
	}
}

// ProcessQueue implements [SyncEngine].
//
// The pass is guarded twice: it refuses to run while offline and it refuses
// to run concurrently with itself. Mutations are applied strictly in
// insertion order. A mutation is removed from the queue only after the remote
// store confirmed it; a failed mutation stays queued and does not block the
// ones behind it. After the pass the tracked collections are refreshed so the
// cache reflects the server's view, including ids the server assigned to
// offline inserts.
func (e *replayEngine) ProcessQueue(ctx context.Context) error {
	if !e.state.Online() {
		return ErrOffline
	}
	if !e.state.TryBeginSync() {
		return ErrSyncInProgress
	}
	defer e.state.EndSync()

	log := logger.FromContext(ctx)

	items, err := e.queue.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("list sync queue: %w", err)
	}
	if len(items) == 0 {
		e.state.SetPending(0)
		return nil
	}

	log.Info().Int("queued", len(items)).Msg("replaying sync queue")

	failed := 0
	for _, mutation := range items {
		if err = e.apply(ctx, mutation); err != nil {
			failed++
			log.Error().Err(err).
				Int64("mutation_id", mutation.ID).
				Str("collection", mutation.Table).
				Str("operation", string(mutation.Op)).
				Msg("replay of queued mutation failed")
			continue
		}

		if err = e.queue.RemoveOne(ctx, mutation.ID); err != nil {
			// the remote write is confirmed; leaving the item queued means it
			// will replay again, which the next pass must tolerate
			log.Error().Err(err).
				Int64("mutation_id", mutation.ID).
				Msg("failed to remove replayed mutation from queue")
		}
	}

	refreshErr := e.refresh.RefreshAll(ctx)
	if refreshErr != nil {
		log.Error().Err(refreshErr).Msg("post-replay refresh failed")
	}

	remaining, err := e.queue.Count(ctx)
	if err != nil {
		return fmt.Errorf("count sync queue: %w", err)
	}
	e.state.SetPending(remaining)

	if failed > 0 {
		e.notifier.SyncFailed()
		return fmt.Errorf("%w: %d of %d", ErrPartialReplay, failed, len(items))
	}
	if refreshErr != nil {
		// every queued mutation went through, but the cache could not be
		// brought up to date; announcing success here would hide stale reads
		e.notifier.SyncFailed()
		return fmt.Errorf("refresh after replay: %w", refreshErr)
	}

	e.notifier.SyncDone()
	return nil
}

func (e *replayEngine) apply(ctx context.Context, mutation models.Mutation) error {
	switch mutation.Op {
	case models.OpInsert:
		return e.applyInsert(ctx, mutation)
	case models.OpUpdate:
		return e.applyUpdate(ctx, mutation)
	case models.OpDelete:
		return e.applyDelete(ctx, mutation)
	default:
		return fmt.Errorf("mutation %d: unknown operation %q", mutation.ID, mutation.Op)
	}
}

// applyInsert strips the temporary id before sending, then swaps the cached
// temp record for the server representation carrying the real id.
func (e *replayEngine) applyInsert(ctx context.Context, mutation models.Mutation) error {
	payload := make(models.Row, len(mutation.Payload))
	for k, v := range mutation.Payload {
		payload[k] = v
	}

	tempID := payload.ID()
	if models.IsTempID(tempID) {
		delete(payload, "id")
	}

	stored, err := e.remote.Insert(ctx, mutation.Table, payload)
	if err != nil {
		return fmt.Errorf("insert %s: %w", mutation.Table, err)
	}

	if models.IsTempID(tempID) {
		if err = e.cache.Delete(ctx, mutation.Table, tempID); err != nil {
			return fmt.Errorf("drop temp record %s/%s: %w", mutation.Table, tempID, err)
		}
	}
	if key := stored.ID(); key != "" {
		if err = e.cache.Put(ctx, mutation.Table, key, stored); err != nil {
			return fmt.Errorf("cache inserted record %s/%s: %w", mutation.Table, key, err)
		}
	}

	return nil
}

func (e *replayEngine) applyUpdate(ctx context.Context, mutation models.Mutation) error {
	id, err := mutation.EntityID()
	if err != nil {
		return err
	}
	if models.IsTempID(id) {
		// the server never saw the temp id, so there is nothing to patch;
		// the record itself was created by the queued insert preceding this
		// mutation
		logger.FromContext(ctx).Warn().
			Str("collection", mutation.Table).
			Str("id", id).
			Msg("dropping update that targets a temporary id")
		return nil
	}

	confirmed, err := e.remote.Update(ctx, mutation.Table, id, mutation.Payload)
	if err != nil {
		return fmt.Errorf("update %s/%s: %w", mutation.Table, id, err)
	}
	if key := confirmed.ID(); key != "" {
		if err = e.cache.Put(ctx, mutation.Table, key, confirmed); err != nil {
			return fmt.Errorf("cache updated record %s/%s: %w", mutation.Table, key, err)
		}
	}
	return nil
}

func (e *replayEngine) applyDelete(ctx context.Context, mutation models.Mutation) error {
	id, err := mutation.EntityID()
	if err != nil {
		return err
	}
	if models.IsTempID(id) {
		// the entity never reached the server; dropping the delete locally
		// is the correct outcome
		return nil
	}

	if err = e.remote.Delete(ctx, mutation.Table, id); err != nil {
		return fmt.Errorf("delete %s/%s: %w", mutation.Table, id, err)
	}
	return nil
}
