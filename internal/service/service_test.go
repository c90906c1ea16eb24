package service

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Tanzeel8246/madrasa/internal/adapter"
	"github.com/Tanzeel8246/madrasa/internal/config"
	"github.com/Tanzeel8246/madrasa/internal/logger"
	"github.com/Tanzeel8246/madrasa/internal/store"
	"github.com/Tanzeel8246/madrasa/models"
)

func newTestStorages(t *testing.T) *store.Storages {
	t.Helper()

	storages, err := store.NewStorages(config.ClientStorage{
		DB: config.ClientDB{DSN: ":memory:"},
	}, logger.Nop())
	require.NoError(t, err)

	return storages
}

// fakeRemote is an in-memory RemoteStore with scriptable reachability and
// per-call failures. Calls are recorded in order for replay-order assertions.
type fakeRemote struct {
	mu        sync.Mutex
	reachable bool
	rows      map[string][]models.Row
	calls     []string
	failOn    map[string]error
	nextID    int
	token     string
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{
		reachable: true,
		rows:      make(map[string][]models.Row),
		failOn:    make(map[string]error),
	}
}

func (f *fakeRemote) setReachable(reachable bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reachable = reachable
}

func (f *fakeRemote) failNext(call string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failOn[call] = err
}

func (f *fakeRemote) seed(table string, rows ...models.Row) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[table] = append(f.rows[table], rows...)
}

func (f *fakeRemote) serverRows(table string) []models.Row {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Row, len(f.rows[table]))
	copy(out, f.rows[table])
	return out
}

func (f *fakeRemote) callLog() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.calls))
	copy(out, f.calls)
	return out
}

func (f *fakeRemote) check(call string) error {
	if !f.reachable {
		return fmt.Errorf("%w: fake remote is unreachable", adapter.ErrUnavailable)
	}
	if err, ok := f.failOn[call]; ok {
		delete(f.failOn, call)
		return err
	}
	return nil
}

func (f *fakeRemote) SetToken(token string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token = token
}

func (f *fakeRemote) Token() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.token
}

func (f *fakeRemote) SignIn(_ context.Context, email, _ string) (models.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.check("signin"); err != nil {
		return models.Session{}, err
	}
	return models.Session{UserID: "user-1", Email: email}, nil
}

func (f *fakeRemote) Ping(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.check("ping")
}

func (f *fakeRemote) SelectAll(_ context.Context, table string) ([]models.Row, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.check("select " + table); err != nil {
		return nil, err
	}
	out := make([]models.Row, len(f.rows[table]))
	copy(out, f.rows[table])
	return out, nil
}

func (f *fakeRemote) Insert(_ context.Context, table string, row models.Row) (models.Row, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.check("insert " + table); err != nil {
		return nil, err
	}

	stored := make(models.Row, len(row)+1)
	for k, v := range row {
		stored[k] = v
	}
	if stored.ID() == "" {
		f.nextID++
		stored["id"] = fmt.Sprintf("srv-%d", f.nextID)
	}

	f.rows[table] = append(f.rows[table], stored)
	f.calls = append(f.calls, fmt.Sprintf("insert %s %s", table, stored.ID()))
	return stored, nil
}

func (f *fakeRemote) Update(_ context.Context, table, id string, row models.Row) (models.Row, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.check("update " + table + " " + id); err != nil {
		return nil, err
	}

	// a missing id silently matches nothing, like the real row API
	var confirmed models.Row
	for _, existing := range f.rows[table] {
		if existing.ID() == id {
			for k, v := range row {
				existing[k] = v
			}
			confirmed = existing
		}
	}

	f.calls = append(f.calls, fmt.Sprintf("update %s %s", table, id))
	return confirmed, nil
}

func (f *fakeRemote) Delete(_ context.Context, table, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.check("delete " + table + " " + id); err != nil {
		return err
	}

	kept := f.rows[table][:0]
	for _, existing := range f.rows[table] {
		if existing.ID() != id {
			kept = append(kept, existing)
		}
	}
	f.rows[table] = kept

	f.calls = append(f.calls, fmt.Sprintf("delete %s %s", table, id))
	return nil
}

// recordNotifier counts lifecycle events for assertions.
type recordNotifier struct {
	mu           sync.Mutex
	wentOnline   int
	wentOffline  int
	syncDone     int
	syncFailed   int
	savedOffline []string
}

func (n *recordNotifier) WentOnline() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.wentOnline++
}

func (n *recordNotifier) WentOffline() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.wentOffline++
}

func (n *recordNotifier) SyncDone() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.syncDone++
}

func (n *recordNotifier) SyncFailed() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.syncFailed++
}

func (n *recordNotifier) SavedOffline(table string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.savedOffline = append(n.savedOffline, table)
}

func (n *recordNotifier) StatusChanged(models.SyncStatus) {}

func (n *recordNotifier) counts() (online, offline, done, failed int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.wentOnline, n.wentOffline, n.syncDone, n.syncFailed
}

type testEnv struct {
	storages *store.Storages
	remote   *fakeRemote
	notifier *recordNotifier
	services *Services
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	storages := newTestStorages(t)
	remote := newFakeRemote()
	notifier := &recordNotifier{}
	services := NewServices(storages, remote, notifier, logger.Nop())

	return &testEnv{
		storages: storages,
		remote:   remote,
		notifier: notifier,
		services: services,
	}
}
