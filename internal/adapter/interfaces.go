// Package adapter provides transport-layer abstractions for communicating with
// the remote tabular store.
//
// The primary abstraction is [RemoteStore], which decouples the service layer
// from the underlying protocol. The package ships a REST implementation
// ([NewRESTStore]) speaking the PostgREST-style row API exposed by the hosted
// backend: one resource per table, filters passed as query parameters.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnauthorized] for 401, [ErrUnavailable] for a network
// failure). The connectivity monitor relies on [ErrUnavailable] to distinguish
// "server unreachable" from ordinary request failures.
package adapter

import (
	"context"

	"github.com/Tanzeel8246/madrasa/models"
)

// RemoteStore defines transport-agnostic communication with the remote
// tabular store. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to the
// sentinel values defined in this package.
type RemoteStore interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It should be called immediately
	// after a successful SignIn, or at startup when a pre-issued token is
	// configured.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// SignIn authenticates with the remote store using email and password.
	// On success it stores the returned access token via SetToken and
	// returns the decoded session. Returns an error if the request fails or
	// the credentials are rejected.
	SignIn(ctx context.Context, email, password string) (models.Session, error)

	// Ping performs a lightweight reachability probe against the remote
	// store. It returns nil when the server answers, and an error wrapping
	// [ErrUnavailable] when it cannot be reached. Used by the connectivity
	// monitor.
	Ping(ctx context.Context) error

	// SelectAll fetches every row of table visible to the current session.
	SelectAll(ctx context.Context, table string) ([]models.Row, error)

	// Insert creates row in table and returns the stored representation,
	// including the server-assigned id.
	Insert(ctx context.Context, table string, row models.Row) (models.Row, error)

	// Update applies row as a partial update to the record of table
	// identified by id and returns the confirmed representation, including
	// server-computed fields. Returns a nil row when no record matched id.
	Update(ctx context.Context, table string, id string, row models.Row) (models.Row, error)

	// Delete removes the record of table identified by id. Deleting a record
	// that no longer exists is not an error.
	Delete(ctx context.Context, table string, id string) error
}
