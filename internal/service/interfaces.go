// Package service implements the offline-first business logic of the madrasa
// client: collection reads and writes, the durable mutation queue, the
// connectivity monitor, the replay engine, and the cache refresh coordinator.
//
// The design rule running through the package is that the local cache is the
// source of truth for reads and the remote store is the source of truth for
// writes. While offline, writes land in the cache immediately and in the sync
// queue durably; when connectivity returns, the replay engine pushes the queue
// to the remote store in insertion order and the refresh coordinator then
// mirrors the server's state back into the cache.
package service

import (
	"context"
	"time"

	"github.com/Tanzeel8246/madrasa/models"
)

// CollectionService is the single entry point for reading and writing
// collection records. It routes every write based on current connectivity:
// online writes go straight to the remote store, offline writes are applied
// to the local cache and recorded in the sync queue.
type CollectionService interface {
	// List returns all records of table. Online it fetches from the remote
	// store and refreshes the cached copy; offline (or when the remote store
	// is unreachable) it serves the cached snapshot.
	List(ctx context.Context, table string) ([]models.Row, error)

	// Get returns the single cached record of table identified by id.
	Get(ctx context.Context, table, id string) (models.Row, error)

	// Create stores a new record. Online it inserts remotely and returns the
	// server representation; offline it assigns a temporary id, caches the
	// record, and queues the insert for replay.
	Create(ctx context.Context, table string, row models.Row) (models.Row, error)

	// Update applies a partial update to the record identified by id.
	// Online it patches remotely and merges into the cache; offline it
	// merges into the cache and queues the update for replay.
	Update(ctx context.Context, table, id string, row models.Row) error

	// Delete removes the record identified by id. Online it deletes remotely
	// and from the cache; offline it deletes from the cache and queues the
	// delete for replay.
	Delete(ctx context.Context, table, id string) error
}

// SyncEngine replays the durable mutation queue against the remote store.
type SyncEngine interface {
	// ProcessQueue drains the sync queue in insertion order. Each mutation is
	// applied independently: a failed item is logged and left in the queue
	// while replay continues with the next one. After the pass the tracked
	// collections are refreshed from the server and the pending counter is
	// updated; a failed refresh is reported as a sync failure even when every
	// mutation went through. Returns ErrSyncInProgress when a pass is already
	// running and ErrOffline when the client is offline.
	ProcessQueue(ctx context.Context) error
}

// RefreshService mirrors the remote state of the tracked collections into
// the local cache.
type RefreshService interface {
	// RefreshAll refreshes every tracked collection. A collection is cleared
	// only after its replacement data has been fetched successfully, so a
	// failed fetch leaves the stale snapshot intact. Collections fail
	// independently; the joined error reports every failure.
	RefreshAll(ctx context.Context) error

	// RefreshOne refreshes a single collection with the same
	// fetch-then-clear ordering.
	RefreshOne(ctx context.Context, table string) error
}

// Monitor is the background connectivity watcher. It probes the remote store
// on a ticker, keeps the shared online flag current, and triggers a replay
// pass when connectivity returns.
type Monitor interface {
	// Start launches the background probe goroutine. It probes once
	// immediately and then every interval, defaulting to 30 seconds if
	// interval is zero or negative. Any previously running monitor is
	// stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated. Safe to call when the monitor is not running.
	Stop()

	// ProbeOnce performs a single connectivity probe synchronously and
	// returns the resulting online state.
	ProbeOnce(ctx context.Context) bool
}

// Notifier receives user-facing sync lifecycle events. Implementations
// surface them as log lines or terminal indicators.
type Notifier interface {
	// WentOnline is called when connectivity transitions from offline to online.
	WentOnline()
	// WentOffline is called when connectivity transitions from online to offline.
	WentOffline()
	// SyncDone is called after a replay pass in which every mutation succeeded.
	SyncDone()
	// SyncFailed is called after a replay pass that left failed mutations queued.
	SyncFailed()
	// SavedOffline is called when a write was captured locally while offline.
	SavedOffline(table string)
	// StatusChanged is called whenever the sync status snapshot changes.
	StatusChanged(status models.SyncStatus)
}
