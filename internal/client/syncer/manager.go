package syncer

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dmitrijs2005/recipediary/internal/logging"
)

// ErrReconcileSkipped is reported when reconciliation did not run because the
// deletion sync failed. Publishing local-only records without the tombstones
// applied would bring deleted recipes back.
var ErrReconcileSkipped = errors.New("skipped: deletion sync failed")

type State int32

const (
	NotStarted State = iota
	Running
	Completed
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case Running:
		return "running"
	case Completed:
		return "completed"
	default:
		return "unknown"
	}
}

type DeletionRunner interface {
	Run(ctx context.Context) (DeletionReport, error)
}

type ReconcileRunner interface {
	Run(ctx context.Context) (ReconcileReport, error)
}

// Summary is what a finished sync reports. The errors are nil when the
// corresponding step succeeded.
type Summary struct {
	Deletion     DeletionReport
	DeletionErr  error
	Reconcile    ReconcileReport
	ReconcileErr error
	StartedAt    time.Time
	FinishedAt   time.Time
}

// Manager runs the startup sync at most once per process: deletions first,
// then reconciliation. Reconciliation is skipped when the deletion sync
// failed. It reaches Completed even when a step failed.
type Manager struct {
	deletions  DeletionRunner
	reconciler ReconcileRunner
	logger     logging.Logger

	state atomic.Int32
	done  chan struct{}

	mu      sync.Mutex
	summary Summary
}

func NewManager(deletions DeletionRunner, reconciler ReconcileRunner, logger logging.Logger) *Manager {
	return &Manager{
		deletions:  deletions,
		reconciler: reconciler,
		logger:     logger,
		done:       make(chan struct{}),
	}
}

// Execute starts the sync in the background and reports whether this call
// started it. Only the first call on a fresh Manager does anything.
func (m *Manager) Execute(ctx context.Context) bool {
	if !m.state.CompareAndSwap(int32(NotStarted), int32(Running)) {
		return false
	}
	go m.run(ctx)
	return true
}

func (m *Manager) run(ctx context.Context) {
	s := Summary{StartedAt: time.Now()}

	m.logger.Info(ctx, "syncing deleted recipes")
	s.Deletion, s.DeletionErr = m.deletions.Run(ctx)
	if s.DeletionErr != nil {
		m.logger.Warn(ctx, "deletion sync failed, skipping reconciliation", "error", s.DeletionErr)
		s.ReconcileErr = ErrReconcileSkipped
	} else {
		m.logger.Info(ctx, "syncing recipes")
		s.Reconcile, s.ReconcileErr = m.reconciler.Run(ctx)
		if s.ReconcileErr != nil {
			m.logger.Warn(ctx, "reconciliation failed", "error", s.ReconcileErr)
		}
	}

	s.FinishedAt = time.Now()

	m.mu.Lock()
	m.summary = s
	m.mu.Unlock()

	m.state.Store(int32(Completed))
	close(m.done)
}

func (m *Manager) State() State {
	return State(m.state.Load())
}

func (m *Manager) HasSyncBeenExecuted() bool {
	return m.State() == Completed
}

// Done is closed once the sync has completed.
func (m *Manager) Done() <-chan struct{} {
	return m.done
}

// Wait blocks until the sync completes or ctx is done.
func (m *Manager) Wait(ctx context.Context) error {
	select {
	case <-m.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *Manager) Summary() Summary {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.summary
}
