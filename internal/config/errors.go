package config

import "errors"

var (
	// ErrInvalidJSONConfig indicates that the JSON config file contains a
	// value that cannot be interpreted.
	ErrInvalidJSONConfig = errors.New("invalid json config")

	// ErrNoRemoteBaseURL indicates that no remote store URL was supplied by
	// any configuration source.
	ErrNoRemoteBaseURL = errors.New("remote base url is required")

	// ErrNoDatabaseDSN indicates that no local database path was supplied by
	// any configuration source.
	ErrNoDatabaseDSN = errors.New("local database path is required")
)
