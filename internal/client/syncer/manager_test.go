package syncer

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/recipediary/internal/client/client"
	"github.com/dmitrijs2005/recipediary/internal/logging"
	"github.com/dmitrijs2005/recipediary/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDeletion struct {
	calls   atomic.Int32
	release chan struct{}
	err     error
	log     *orderLog
}

func (s *stubDeletion) Run(ctx context.Context) (DeletionReport, error) {
	s.calls.Add(1)
	if s.release != nil {
		<-s.release
	}
	s.log.add("deletion")
	return DeletionReport{Tombstones: 2, Deleted: 1}, s.err
}

type stubReconcile struct {
	calls atomic.Int32
	err   error
	log   *orderLog
}

func (s *stubReconcile) Run(ctx context.Context) (ReconcileReport, error) {
	s.calls.Add(1)
	s.log.add("reconcile")
	return ReconcileReport{Pulled: 3}, s.err
}

type orderLog struct {
	mu    sync.Mutex
	steps []string
}

func (l *orderLog) add(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.steps = append(l.steps, s)
}

func (l *orderLog) get() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.steps...)
}

func TestManager_RunsOnceInOrder(t *testing.T) {
	log := &orderLog{}
	d := &stubDeletion{log: log}
	r := &stubReconcile{log: log}
	m := NewManager(d, r, logging.NewDiscardLogger())

	assert.Equal(t, NotStarted, m.State())
	assert.False(t, m.HasSyncBeenExecuted())

	require.True(t, m.Execute(context.Background()))
	require.NoError(t, m.Wait(context.Background()))

	assert.False(t, m.Execute(context.Background()), "completed is terminal")
	assert.True(t, m.HasSyncBeenExecuted())
	assert.Equal(t, Completed, m.State())
	assert.Equal(t, []string{"deletion", "reconcile"}, log.get())
	assert.EqualValues(t, 1, d.calls.Load())
	assert.EqualValues(t, 1, r.calls.Load())

	s := m.Summary()
	assert.EqualValues(t, 1, s.Deletion.Deleted)
	assert.EqualValues(t, 3, s.Reconcile.Pulled)
	assert.NoError(t, s.DeletionErr)
	assert.False(t, s.FinishedAt.Before(s.StartedAt))
}

func TestManager_CompletesAfterFailures(t *testing.T) {
	log := &orderLog{}
	d := &stubDeletion{log: log}
	r := &stubReconcile{log: log, err: errors.New("snapshot failed")}
	m := NewManager(d, r, logging.NewDiscardLogger())

	m.Execute(context.Background())

	select {
	case <-m.Done():
	case <-time.After(time.Second):
		t.Fatal("sync did not complete")
	}
	assert.True(t, m.HasSyncBeenExecuted())
	assert.Equal(t, []string{"deletion", "reconcile"}, log.get())
	assert.NoError(t, m.Summary().DeletionErr)
	assert.EqualError(t, m.Summary().ReconcileErr, "snapshot failed")
}

func TestManager_FailedDeletionSkipsReconcile(t *testing.T) {
	log := &orderLog{}
	d := &stubDeletion{log: log, err: errors.New("tombstones unavailable")}
	r := &stubReconcile{log: log}
	m := NewManager(d, r, logging.NewDiscardLogger())

	m.Execute(context.Background())
	require.NoError(t, m.Wait(context.Background()))

	assert.True(t, m.HasSyncBeenExecuted())
	assert.Equal(t, []string{"deletion"}, log.get())
	assert.EqualValues(t, 0, r.calls.Load())
	assert.EqualError(t, m.Summary().DeletionErr, "tombstones unavailable")
	assert.ErrorIs(t, m.Summary().ReconcileErr, ErrReconcileSkipped)
}

// A deleted recipe still cached here must not be published back when the
// tombstones cannot be applied.
func TestManager_FailedDeletionDoesNotResurrect(t *testing.T) {
	store := testutil.NewLocalStore(t)
	remote := testutil.NewFakeRemote()
	seedLocal(t, store, rec("gone", "Deleted elsewhere", 0))
	remote.SeedTombstones(rec("gone", "Deleted elsewhere", 0))
	remote.FailOn(testutil.MethodGetAllTombstones, client.ErrUnavailable)

	logger := logging.NewDiscardLogger()
	m := NewManager(
		NewDeletionSync(store, remote, testPolicy, logger),
		NewReconciler(store, remote, testPolicy, logger, 2),
		logger,
	)
	m.Execute(context.Background())
	require.NoError(t, m.Wait(context.Background()))

	assert.Error(t, m.Summary().DeletionErr)
	assert.Nil(t, remote.Recipe("gone"))
	assert.Zero(t, remote.Calls(testutil.MethodGetAll))
}

func TestManager_ConcurrentExecute(t *testing.T) {
	log := &orderLog{}
	d := &stubDeletion{log: log, release: make(chan struct{})}
	r := &stubReconcile{log: log}
	m := NewManager(d, r, logging.NewDiscardLogger())

	var started atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if m.Execute(context.Background()) {
				started.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, started.Load())
	assert.Equal(t, Running, m.State())
	assert.False(t, m.HasSyncBeenExecuted())

	close(d.release)
	require.NoError(t, m.Wait(context.Background()))
	assert.EqualValues(t, 1, d.calls.Load())
	assert.EqualValues(t, 1, r.calls.Load())
}

func TestManager_WaitHonoursContext(t *testing.T) {
	m := NewManager(&stubDeletion{log: &orderLog{}}, &stubReconcile{log: &orderLog{}}, logging.NewDiscardLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	assert.ErrorIs(t, m.Wait(ctx), context.DeadlineExceeded)
	assert.Equal(t, "not started", m.State().String())
}
