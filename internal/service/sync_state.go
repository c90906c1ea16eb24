package service

import (
	"sync"

	"github.com/Tanzeel8246/madrasa/models"
)

// SyncState is the shared, mutex-guarded connectivity and replay state. All
// services read and update it; subscribers are notified after every change so
// the terminal indicator stays current without polling.
type SyncState struct {
	mu      sync.Mutex
	online  bool
	syncing bool
	pending int
	subs    []func(models.SyncStatus)
}

// NewSyncState returns a SyncState that starts offline with no pending
// changes. The first successful probe flips it online.
func NewSyncState() *SyncState {
	return &SyncState{}
}

// Online reports the last observed connectivity state.
func (s *SyncState) Online() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.online
}

// SetOnline records the observed connectivity state and reports whether it
// changed. Subscribers are notified only on an actual transition.
func (s *SyncState) SetOnline(online bool) bool {
	s.mu.Lock()
	changed := s.online != online
	s.online = online
	snapshot := s.snapshotLocked()
	subs := s.subs
	s.mu.Unlock()

	if changed {
		notify(subs, snapshot)
	}
	return changed
}

// TryBeginSync attempts to claim the replay mutex. It returns false when a
// replay pass is already running; the caller must skip, not wait.
func (s *SyncState) TryBeginSync() bool {
	s.mu.Lock()
	if s.syncing {
		s.mu.Unlock()
		return false
	}
	s.syncing = true
	snapshot := s.snapshotLocked()
	subs := s.subs
	s.mu.Unlock()

	notify(subs, snapshot)
	return true
}

// EndSync releases the replay mutex claimed by TryBeginSync.
func (s *SyncState) EndSync() {
	s.mu.Lock()
	s.syncing = false
	snapshot := s.snapshotLocked()
	subs := s.subs
	s.mu.Unlock()

	notify(subs, snapshot)
}

// SetPending records the number of queued mutations awaiting replay.
func (s *SyncState) SetPending(n int) {
	if n < 0 {
		n = 0
	}

	s.mu.Lock()
	changed := s.pending != n
	s.pending = n
	snapshot := s.snapshotLocked()
	subs := s.subs
	s.mu.Unlock()

	if changed {
		notify(subs, snapshot)
	}
}

// Snapshot returns the current status as an immutable value.
func (s *SyncState) Snapshot() models.SyncStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Subscribe registers fn to be called after every state change. Callbacks run
// synchronously on the goroutine that caused the change and must not call
// back into SyncState.
func (s *SyncState) Subscribe(fn func(models.SyncStatus)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

func (s *SyncState) snapshotLocked() models.SyncStatus {
	return models.SyncStatus{
		Online:  s.online,
		Syncing: s.syncing,
		Pending: s.pending,
	}
}

func notify(subs []func(models.SyncStatus), status models.SyncStatus) {
	for _, fn := range subs {
		fn(status)
	}
}
