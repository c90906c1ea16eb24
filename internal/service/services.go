package service

import (
	"context"
	"fmt"

	"github.com/Tanzeel8246/madrasa/internal/adapter"
	"github.com/Tanzeel8246/madrasa/internal/logger"
	"github.com/Tanzeel8246/madrasa/internal/store"
	"github.com/Tanzeel8246/madrasa/models"
)

// Services aggregates every service of the offline sync subsystem, wired
// against shared state.
type Services struct {
	State       *SyncState
	Collections CollectionService
	Refresh     RefreshService
	Engine      SyncEngine
	Monitor     Monitor
	Notifier    Notifier

	queue store.SyncQueue
}

// NewServices wires the full service graph on top of the local storages and
// the remote store adapter.
func NewServices(storages *store.Storages, remote adapter.RemoteStore, notifier Notifier, log *logger.Logger) *Services {
	state := NewSyncState()
	state.Subscribe(notifier.StatusChanged)

	refresh := NewRefreshService(remote, storages.Cache, log)
	engine := NewReplayEngine(storages.Queue, storages.Cache, remote, refresh, state, notifier, log)
	collections := NewCollectionService(storages, remote, refresh, state, notifier, log)
	monitor := NewConnectivityMonitor(remote, engine, state, notifier, log)

	return &Services{
		State:       state,
		Collections: collections,
		Refresh:     refresh,
		Engine:      engine,
		Monitor:     monitor,
		Notifier:    notifier,
		queue:       storages.Queue,
	}
}

// RestorePending loads the persisted queue length into the shared state.
// Called once at startup so the pending counter survives restarts.
func (s *Services) RestorePending(ctx context.Context) error {
	pending, err := s.queue.Count(ctx)
	if err != nil {
		return fmt.Errorf("restore pending counter: %w", err)
	}
	s.State.SetPending(pending)
	return nil
}

// Status returns the current sync status snapshot.
func (s *Services) Status() models.SyncStatus {
	return s.State.Snapshot()
}
