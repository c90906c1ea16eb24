package models

import (
	"fmt"
	"time"
)

// Operation is the kind of write a queued mutation carries.
type Operation string

const (
	OpInsert Operation = "insert"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// Valid reports whether op is one of the three known operations.
func (op Operation) Valid() bool {
	switch op {
	case OpInsert, OpUpdate, OpDelete:
		return true
	}
	return false
}

// Mutation is one durable, not-yet-confirmed write. The queue read in ID
// order is the exact sequence of writes awaiting replay against the remote
// store.
//
// Payload is the full entity for an insert, a partial entity including its
// id for an update, and an id-only row for a delete.
type Mutation struct {
	ID         int64     `json:"id"`
	Table      string    `json:"table"`
	Op         Operation `json:"operation"`
	Payload    Row       `json:"payload"`
	EnqueuedAt time.Time `json:"enqueued_at"`
}

// EntityID returns the identifier of the entity the mutation targets.
// Updates and deletes must carry it inside the payload.
func (m Mutation) EntityID() (string, error) {
	id := m.Payload.ID()
	if id == "" {
		return "", fmt.Errorf("mutation %d on %q has no entity id", m.ID, m.Table)
	}
	return id, nil
}
