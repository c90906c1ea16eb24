package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Tanzeel8246/madrasa/internal/adapter"
	"github.com/Tanzeel8246/madrasa/internal/logger"
)

const defaultProbeInterval = 30 * time.Second

type connectivityMonitor struct {
	remote   adapter.RemoteStore
	engine   SyncEngine
	state    *SyncState
	notifier Notifier
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewConnectivityMonitor creates the background watcher that probes the
// remote store and drives online/offline transitions. The monitor is idle
// until Start is called.
func NewConnectivityMonitor(
	remote adapter.RemoteStore,
	engine SyncEngine,
	state *SyncState,
	notifier Notifier,
	log *logger.Logger,
) Monitor {
	return &connectivityMonitor{
		remote:   remote,
		engine:   engine,
		state:    state,
		notifier: notifier,
		logger:   log,
	}
}

// Start implements [Monitor]. It stops any previously running monitor, then
// launches a background goroutine that probes once immediately and again
// every interval. If interval is zero or negative it defaults to 30 seconds.
// The goroutine exits when ctx is cancelled or Stop is called.
func (m *connectivityMonitor) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultProbeInterval
	}

	m.Stop()

	m.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.wg.Add(1)
	m.mu.Unlock()

	go func() {
		defer m.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		m.ProbeOnce(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				m.ProbeOnce(jobCtx)
			}
		}
	}()
}

// Stop implements [Monitor]. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when the
// monitor is not running (no-op in that case).
func (m *connectivityMonitor) Stop() {
	m.mu.Lock()
	cancel := m.cancel
	m.cancel = nil
	m.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	m.wg.Wait()
}

// ProbeOnce implements [Monitor]. A transition to online announces itself and
// triggers a replay pass; a transition to offline only announces itself. While
// the client stays online, any backlog left by a failed pass is retried.
func (m *connectivityMonitor) ProbeOnce(ctx context.Context) bool {
	err := m.remote.Ping(ctx)
	online := err == nil
	changed := m.state.SetOnline(online)

	switch {
	case changed && online:
		m.notifier.WentOnline()
		m.runReplay(ctx)
	case changed && !online:
		m.notifier.WentOffline()
	case online && m.state.Snapshot().Pending > 0:
		m.runReplay(ctx)
	}

	if err != nil {
		m.logger.Debug().Err(err).Msg("connectivity probe failed")
	}

	return online
}

func (m *connectivityMonitor) runReplay(ctx context.Context) {
	err := m.engine.ProcessQueue(ctx)
	if err == nil || errors.Is(err, ErrSyncInProgress) {
		return
	}
	m.logger.Error().Err(err).Msg("replay pass failed")
}
