package service

import "errors"

var (
	// ErrSyncInProgress indicates a replay pass is already running; the
	// caller's request was skipped, not queued.
	ErrSyncInProgress = errors.New("sync already in progress")

	// ErrOffline indicates the operation requires connectivity and the
	// client is currently offline.
	ErrOffline = errors.New("client is offline")

	// ErrUnknownCollection indicates the requested table is not one the
	// application manages.
	ErrUnknownCollection = errors.New("unknown collection")

	// ErrPartialReplay indicates a replay pass completed but one or more
	// mutations failed and remain queued for the next pass.
	ErrPartialReplay = errors.New("some queued changes failed to sync")
)
