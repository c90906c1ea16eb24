package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tanzeel8246/madrasa/internal/logger"
)

type fakeEngine struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (e *fakeEngine) ProcessQueue(context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.calls++
	return e.err
}

func (e *fakeEngine) count() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.calls
}

func TestMonitor_OnlineTransitionTriggersReplay(t *testing.T) {
	remote := newFakeRemote()
	state := NewSyncState()
	engine := &fakeEngine{}
	notifier := &recordNotifier{}
	monitor := NewConnectivityMonitor(remote, engine, state, notifier, logger.Nop())

	online := monitor.ProbeOnce(context.Background())
	require.True(t, online)
	assert.True(t, state.Online())
	assert.Equal(t, 1, engine.count())

	wentOnline, wentOffline, _, _ := notifier.counts()
	assert.Equal(t, 1, wentOnline)
	assert.Zero(t, wentOffline)
}

func TestMonitor_OfflineTransitionAnnouncesOnly(t *testing.T) {
	remote := newFakeRemote()
	state := NewSyncState()
	state.SetOnline(true)
	engine := &fakeEngine{}
	notifier := &recordNotifier{}
	monitor := NewConnectivityMonitor(remote, engine, state, notifier, logger.Nop())

	remote.setReachable(false)
	online := monitor.ProbeOnce(context.Background())
	require.False(t, online)
	assert.False(t, state.Online())
	assert.Zero(t, engine.count())

	_, wentOffline, _, _ := notifier.counts()
	assert.Equal(t, 1, wentOffline)
}

func TestMonitor_SteadyOnlineRetriesBacklog(t *testing.T) {
	remote := newFakeRemote()
	state := NewSyncState()
	state.SetOnline(true)
	engine := &fakeEngine{}
	notifier := &recordNotifier{}
	monitor := NewConnectivityMonitor(remote, engine, state, notifier, logger.Nop())

	monitor.ProbeOnce(context.Background())
	assert.Zero(t, engine.count(), "no backlog, no replay")

	state.SetPending(2)
	monitor.ProbeOnce(context.Background())
	assert.Equal(t, 1, engine.count(), "a backlog must be retried on the next probe")
}

func TestMonitor_StartStop(t *testing.T) {
	remote := newFakeRemote()
	state := NewSyncState()
	engine := &fakeEngine{}
	monitor := NewConnectivityMonitor(remote, engine, state, &recordNotifier{}, logger.Nop())

	monitor.Start(context.Background(), 10*time.Millisecond)
	require.Eventually(t, state.Online, time.Second, 5*time.Millisecond)
	monitor.Stop()

	// a second Stop must be a safe no-op
	monitor.Stop()
}

func TestMonitor_StopViaContextCancel(t *testing.T) {
	remote := newFakeRemote()
	state := NewSyncState()
	monitor := NewConnectivityMonitor(remote, &fakeEngine{}, state, &recordNotifier{}, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	monitor.Start(ctx, 10*time.Millisecond)
	require.Eventually(t, state.Online, time.Second, 5*time.Millisecond)

	cancel()
	monitor.Stop()
}
