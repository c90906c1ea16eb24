package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tanzeel8246/madrasa/models"
)

func TestSyncState_TryBeginSync(t *testing.T) {
	state := NewSyncState()

	require.True(t, state.TryBeginSync())
	assert.False(t, state.TryBeginSync(), "second claim must be refused while a pass runs")

	state.EndSync()
	assert.True(t, state.TryBeginSync(), "claim must succeed again after EndSync")
}

func TestSyncState_SetOnlineReportsTransitions(t *testing.T) {
	state := NewSyncState()

	assert.False(t, state.Online(), "state starts offline")
	assert.True(t, state.SetOnline(true))
	assert.False(t, state.SetOnline(true), "repeating the same state is not a transition")
	assert.True(t, state.SetOnline(false))
}

func TestSyncState_SetPendingClampsNegative(t *testing.T) {
	state := NewSyncState()

	state.SetPending(-5)
	assert.Equal(t, 0, state.Snapshot().Pending)

	state.SetPending(3)
	assert.Equal(t, 3, state.Snapshot().Pending)
}

func TestSyncState_SubscribersSeeEveryChange(t *testing.T) {
	state := NewSyncState()

	var seen []models.SyncStatus
	state.Subscribe(func(status models.SyncStatus) {
		seen = append(seen, status)
	})

	state.SetOnline(true)
	state.SetPending(2)
	require.True(t, state.TryBeginSync())
	state.EndSync()

	require.Len(t, seen, 4)
	assert.Equal(t, models.SyncStatus{Online: true}, seen[0])
	assert.Equal(t, models.SyncStatus{Online: true, Pending: 2}, seen[1])
	assert.Equal(t, models.SyncStatus{Online: true, Syncing: true, Pending: 2}, seen[2])
	assert.Equal(t, models.SyncStatus{Online: true, Syncing: false, Pending: 2}, seen[3])
}

func TestSyncState_NoNotifyWithoutChange(t *testing.T) {
	state := NewSyncState()
	state.SetPending(1)

	notified := 0
	state.Subscribe(func(models.SyncStatus) { notified++ })

	state.SetOnline(false)
	state.SetPending(1)
	assert.Zero(t, notified)
}
