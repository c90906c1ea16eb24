package adapter

import "errors"

var (
	// ErrBadRequest indicates the server rejected the request as malformed
	// (HTTP 400).
	ErrBadRequest = errors.New("bad request")

	// ErrUnauthorized indicates missing or invalid credentials (HTTP 401).
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrForbidden indicates the current session lacks access to the
	// requested rows (HTTP 403), typically a row-level security denial.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound indicates the requested resource does not exist (HTTP 404).
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates the write violated a uniqueness or foreign-key
	// constraint on the server (HTTP 409).
	ErrConflict = errors.New("conflict")

	// ErrUnavailable indicates the remote store could not be reached: a
	// network-level failure, a timeout, or a gateway error (HTTP 502/503/504).
	// The connectivity monitor treats any error wrapping ErrUnavailable as
	// "offline".
	ErrUnavailable = errors.New("remote store unavailable")

	// ErrInternalServerError indicates an unexpected server-side failure
	// (HTTP 500).
	ErrInternalServerError = errors.New("internal server error")
)

// IsUnavailable reports whether err indicates the remote store is
// unreachable, as opposed to a request that reached the server and failed.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
