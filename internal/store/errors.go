package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNotFound is returned when a cache lookup targets a collection/key
	// pair that does not exist locally.
	ErrNotFound = errors.New("record not found in local cache")

	// ErrInvalidOperation is returned when a mutation is enqueued with an
	// operation other than insert, update or delete.
	ErrInvalidOperation = errors.New("invalid queue operation")

	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")
)
