package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tanzeel8246/madrasa/models"
)

func TestReplay_OfflineCreateThenReplay(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.services.Collections.Create(ctx, models.TableStudents, models.Row{"name": "Ahmed"})
	require.NoError(t, err)
	require.True(t, models.IsTempID(created.ID()))
	assert.Equal(t, 1, env.services.Status().Pending)

	env.services.State.SetOnline(true)
	require.NoError(t, env.services.Engine.ProcessQueue(ctx))

	// queue drained, pending reset
	count, err := env.storages.Queue.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Zero(t, env.services.Status().Pending)

	// server has the record under a real id
	rows := env.remote.serverRows(models.TableStudents)
	require.Len(t, rows, 1)
	assert.False(t, models.IsTempID(rows[0].ID()))
	assert.Equal(t, "Ahmed", rows[0]["name"])

	// temp record replaced in the cache by the server representation
	cached, err := env.storages.Cache.GetAll(ctx, models.TableStudents)
	require.NoError(t, err)
	require.Len(t, cached, 1)
	assert.Equal(t, rows[0].ID(), cached[0].ID())

	_, _, done, failed := env.notifier.counts()
	assert.Equal(t, 1, done)
	assert.Zero(t, failed)
}

func TestReplay_AppliesInInsertionOrder(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.remote.seed(models.TableStudents,
		models.Row{"id": "s1", "name": "Ahmed"},
		models.Row{"id": "s2", "name": "Bilal"},
	)

	require.NoError(t, env.services.Collections.Update(ctx, models.TableStudents, "s1", models.Row{"grade": "A"}))
	require.NoError(t, env.services.Collections.Delete(ctx, models.TableStudents, "s2"))
	_, err := env.services.Collections.Create(ctx, models.TableTeachers, models.Row{"name": "Usman"})
	require.NoError(t, err)

	env.services.State.SetOnline(true)
	require.NoError(t, env.services.Engine.ProcessQueue(ctx))

	calls := env.remote.callLog()
	require.Len(t, calls, 3)
	assert.Equal(t, "update students s1", calls[0])
	assert.Equal(t, "delete students s2", calls[1])
	assert.Equal(t, "insert teachers srv-1", calls[2])
}

func TestReplay_FailedMutationStaysQueued(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.remote.seed(models.TableStudents,
		models.Row{"id": "s1", "name": "Ahmed"},
		models.Row{"id": "s2", "name": "Bilal"},
	)

	require.NoError(t, env.services.Collections.Update(ctx, models.TableStudents, "s1", models.Row{"grade": "A"}))
	require.NoError(t, env.services.Collections.Delete(ctx, models.TableStudents, "s2"))

	env.remote.failNext("update students s1", errors.New("boom"))
	env.services.State.SetOnline(true)

	err := env.services.Engine.ProcessQueue(ctx)
	require.ErrorIs(t, err, ErrPartialReplay)

	// the failed update is still queued, the delete went through
	items, err := env.storages.Queue.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, models.OpUpdate, items[0].Op)
	assert.Equal(t, 1, env.services.Status().Pending)
	assert.Empty(t, env.remote.serverRows(models.TableStudents)[1:], "delete behind the failed update must still apply")

	_, _, done, failed := env.notifier.counts()
	assert.Zero(t, done)
	assert.Equal(t, 1, failed)

	// next pass retries the stalled mutation and succeeds
	require.NoError(t, env.services.Engine.ProcessQueue(ctx))
	count, err := env.storages.Queue.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestReplay_RefusesWhileOffline(t *testing.T) {
	env := newTestEnv(t)

	err := env.services.Engine.ProcessQueue(context.Background())
	assert.ErrorIs(t, err, ErrOffline)
}

func TestReplay_RefusesConcurrentPass(t *testing.T) {
	env := newTestEnv(t)
	env.services.State.SetOnline(true)

	require.True(t, env.services.State.TryBeginSync())
	defer env.services.State.EndSync()

	err := env.services.Engine.ProcessQueue(context.Background())
	assert.ErrorIs(t, err, ErrSyncInProgress)
}

func TestReplay_EmptyQueueIsQuiet(t *testing.T) {
	env := newTestEnv(t)
	env.services.State.SetOnline(true)

	require.NoError(t, env.services.Engine.ProcessQueue(context.Background()))

	_, _, done, failed := env.notifier.counts()
	assert.Zero(t, done, "an empty pass announces nothing")
	assert.Zero(t, failed)
}

func TestReplay_RefreshPullsRemoteChanges(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// a record another client created while we were offline
	env.remote.seed(models.TableClasses, models.Row{"id": "c1", "name": "Hifz"})

	_, err := env.services.Collections.Create(ctx, models.TableStudents, models.Row{"name": "Ahmed"})
	require.NoError(t, err)

	env.services.State.SetOnline(true)
	require.NoError(t, env.services.Engine.ProcessQueue(ctx))

	cached, err := env.storages.Cache.GetAll(ctx, models.TableClasses)
	require.NoError(t, err)
	require.Len(t, cached, 1)
	assert.Equal(t, "c1", cached[0].ID())
}

func TestReplay_RefreshFailureIsNotAnnouncedAsSuccess(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.services.Collections.Create(ctx, models.TableStudents, models.Row{"name": "Ahmed"})
	require.NoError(t, err)

	for _, table := range models.TrackedCollections() {
		env.remote.failNext("select "+table, errors.New("boom"))
	}
	env.services.State.SetOnline(true)

	err = env.services.Engine.ProcessQueue(ctx)
	require.Error(t, err, "a dead refresh leaves the cache stale and must surface")

	// the mutations themselves went through and left the queue
	count, err := env.storages.Queue.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	_, _, done, failed := env.notifier.counts()
	assert.Zero(t, done, "the user must not be told everything synced while the cache is stale")
	assert.Equal(t, 1, failed)
}

func TestReplay_DropsMutationsTargetingTempIDs(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.services.Collections.Create(ctx, models.TableStudents, models.Row{"name": "Ahmed"})
	require.NoError(t, err)
	tempID := created.ID()
	require.True(t, models.IsTempID(tempID))

	require.NoError(t, env.services.Collections.Update(ctx, models.TableStudents, tempID, models.Row{"grade": "B"}))
	require.NoError(t, env.services.Collections.Delete(ctx, models.TableStudents, tempID))

	env.services.State.SetOnline(true)
	require.NoError(t, env.services.Engine.ProcessQueue(ctx))

	// the insert replayed; the temp-id update and delete were dropped
	// instead of stalling the queue forever
	count, err := env.storages.Queue.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	calls := env.remote.callLog()
	require.Len(t, calls, 1)
	assert.Equal(t, "insert students srv-1", calls[0])
}
