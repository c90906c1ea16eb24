package store

import (
	"context"

	"github.com/Tanzeel8246/madrasa/models"
)

// LocalCache is the durable per-collection key-value store holding the
// last-known-good snapshot of every remote collection, plus any temporary
// local edits not yet confirmed by the server.
type LocalCache interface {
	// Put inserts or overwrites one record under key. Re-putting identical
	// data is observably a no-op.
	Put(ctx context.Context, collection, key string, record models.Row) error

	// Get returns the record for key, or ErrNotFound.
	Get(ctx context.Context, collection, key string) (models.Row, error)

	// GetAll returns every stored record in the collection. An empty
	// collection yields an empty slice, never an error.
	GetAll(ctx context.Context, collection string) ([]models.Row, error)

	// Delete removes the record if present. Absent keys are not an error.
	Delete(ctx context.Context, collection, key string) error

	// Clear removes every record in the collection. Used just before a full
	// refresh so server-side deletions do not survive locally.
	Clear(ctx context.Context, collection string) error
}

// SyncQueue is the durable FIFO of mutations performed while offline and
// not yet confirmed by the remote store. Insertion order is a correctness
// requirement: replay applies mutations strictly in this order.
type SyncQueue interface {
	// Enqueue appends a mutation and returns its assigned monotonic id.
	Enqueue(ctx context.Context, table string, op models.Operation, payload models.Row) (int64, error)

	// ListAll returns all queued mutations in insertion order.
	ListAll(ctx context.Context) ([]models.Mutation, error)

	// RemoveOne removes exactly one mutation by id. Removing an id that is
	// not present is a no-op.
	RemoveOne(ctx context.Context, id int64) error

	// ClearAll removes every queued mutation. Safety reset only; normal
	// replay removes items one at a time so partial progress is preserved.
	ClearAll(ctx context.Context) error

	// Count returns the number of queued mutations.
	Count(ctx context.Context) (int, error)
}
