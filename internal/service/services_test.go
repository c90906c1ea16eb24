package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tanzeel8246/madrasa/internal/logger"
	"github.com/Tanzeel8246/madrasa/models"
)

func TestServices_RestorePending(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.services.Collections.Create(ctx, models.TableStudents, models.Row{"name": "Ahmed"})
	require.NoError(t, err)
	_, err = env.services.Collections.Create(ctx, models.TableStudents, models.Row{"name": "Bilal"})
	require.NoError(t, err)

	// a fresh service graph over the same storages starts with a zero
	// counter until it is restored from the queue
	restarted := NewServices(env.storages, env.remote, NewNopNotifier(), logger.Nop())
	assert.Zero(t, restarted.Status().Pending)

	require.NoError(t, restarted.RestorePending(ctx))
	assert.Equal(t, 2, restarted.Status().Pending)
}

func TestServices_StatusSnapshot(t *testing.T) {
	env := newTestEnv(t)

	env.services.State.SetOnline(true)
	env.services.State.SetPending(3)

	status := env.services.Status()
	assert.True(t, status.Online)
	assert.False(t, status.Syncing)
	assert.Equal(t, 3, status.Pending)
}
