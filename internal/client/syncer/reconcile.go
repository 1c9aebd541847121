package syncer

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/dmitrijs2005/recipediary/internal/client/client"
	"github.com/dmitrijs2005/recipediary/internal/client/models"
	"github.com/dmitrijs2005/recipediary/internal/client/repositories/recipes"
	"github.com/dmitrijs2005/recipediary/internal/client/result"
	"github.com/dmitrijs2005/recipediary/internal/common"
	"github.com/dmitrijs2005/recipediary/internal/logging"
	"golang.org/x/sync/errgroup"
)

const DefaultConcurrency = 4

type ReconcileReport struct {
	Local  int
	Remote int
	// Pulled counts remote-only records inserted locally.
	Pulled int64
	// UpdatedLocally counts records where the remote copy was newer.
	UpdatedLocally int64
	// Pushed counts records present on both sides where the local copy won.
	Pushed int64
	// Published counts local-only records sent to the remote store.
	Published int64
	Failed    int64
}

// Reconciler merges the live records of both stores. For a record present on
// both sides the newer UpdatedAt wins and the local copy wins ties. Concurrent
// edits on two devices between syncs therefore lose the older edit.
type Reconciler struct {
	cache       recipes.Repository
	remote      client.RemoteStore
	policy      result.Policy
	logger      logging.Logger
	concurrency int
}

func NewReconciler(cache recipes.Repository, remote client.RemoteStore, policy result.Policy, logger logging.Logger, concurrency int) *Reconciler {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &Reconciler{cache: cache, remote: remote, policy: policy, logger: logger, concurrency: concurrency}
}

type counters struct {
	pulled, updated, pushed, published, failed atomic.Int64
}

// Run reconciles both stores. If either snapshot cannot be read the run is
// aborted before anything is written.
func (r *Reconciler) Run(ctx context.Context) (ReconcileReport, error) {
	var rep ReconcileReport

	cached := result.FromCache(ctx, r.policy, r.cache.GetAll)
	if !cached.OK() {
		r.logger.Error(ctx, "failed to read local snapshot", "result", cached.String())
		return rep, fmt.Errorf("local snapshot: %s: %w", cached.Message(), cached.Err())
	}
	remote := result.FromRemote(ctx, r.policy, r.remote.GetAll)
	if !remote.OK() {
		r.logger.Error(ctx, "failed to read remote snapshot", "result", remote.String())
		return rep, fmt.Errorf("remote snapshot: %s: %w", remote.Message(), remote.Err())
	}
	rep.Local = len(cached.Value())
	rep.Remote = len(remote.Value())

	var (
		c         counters
		mu        sync.Mutex
		accounted = make(map[string]struct{}, len(remote.Value()))
		localIDs  = make(map[string]struct{}, len(cached.Value()))
		missing   []*models.Recipe
	)
	for _, lr := range cached.Value() {
		localIDs[lr.ID] = struct{}{}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for _, rr := range remote.Value() {
		if _, ok := localIDs[rr.ID]; !ok {
			missing = append(missing, rr)
			continue
		}
		g.Go(func() error {
			seen, err := r.reconcileOne(gctx, rr, &c)
			if seen {
				mu.Lock()
				accounted[rr.ID] = struct{}{}
				mu.Unlock()
			}
			if err != nil {
				c.failed.Add(1)
				r.logger.Warn(gctx, "failed to reconcile recipe", "id", rr.ID, "error", err)
			}
			return nil
		})
	}
	g.Go(func() error {
		r.pull(gctx, missing, &c)
		return nil
	})
	_ = g.Wait()

	pending := make([]*models.Recipe, 0)
	for _, lr := range cached.Value() {
		if _, ok := accounted[lr.ID]; !ok {
			pending = append(pending, lr)
		}
	}
	r.publish(ctx, pending, &c)

	rep.Pulled = c.pulled.Load()
	rep.UpdatedLocally = c.updated.Load()
	rep.Pushed = c.pushed.Load()
	rep.Published = c.published.Load()
	rep.Failed = c.failed.Load()

	r.logger.Info(ctx, "reconciliation finished",
		"local", rep.Local, "remote", rep.Remote,
		"pulled", rep.Pulled, "updated_locally", rep.UpdatedLocally,
		"pushed", rep.Pushed, "published", rep.Published, "failed", rep.Failed)
	return rep, nil
}

// reconcileOne settles a single remote record. seen reports whether the
// id must be left out of the local-only publish step.
func (r *Reconciler) reconcileOne(ctx context.Context, rr *models.Recipe, c *counters) (seen bool, err error) {
	found := result.FromCache(ctx, r.policy, func(ctx context.Context) (*models.Recipe, error) {
		return r.cache.GetByID(ctx, rr.ID)
	})
	if !found.OK() {
		// Unknown local state; leave the record out of publishing too.
		return true, fmt.Errorf("lookup: %s", found.Message())
	}

	local := found.Value()
	if local == nil {
		ins := result.FromCache(ctx, r.policy, func(ctx context.Context) (int64, error) {
			return r.cache.Insert(ctx, rr)
		})
		if !ins.OK() {
			return false, fmt.Errorf("insert: %s", ins.Message())
		}
		c.pulled.Add(1)
		return true, nil
	}

	if rr.UpdatedAt.After(local.UpdatedAt) {
		upd := result.FromCache(ctx, r.policy, func(ctx context.Context) (int64, error) {
			return r.cache.Update(ctx, rr.ID, rr.AsUpdate(true))
		})
		if !upd.OK() {
			return true, fmt.Errorf("update: %s", upd.Message())
		}
		c.updated.Add(1)
		return true, nil
	}

	push := result.FromRemote(ctx, r.policy, result.Do(func(ctx context.Context) error {
		return r.remote.InsertOrUpdate(ctx, local)
	}))
	if !push.OK() {
		return true, fmt.Errorf("push: %s", push.Message())
	}
	c.pushed.Add(1)
	return true, nil
}

// pull inserts remote-only records in one local batch. A row the cache
// already holds by now was written after the snapshot and is left to the next
// sync.
func (r *Reconciler) pull(ctx context.Context, missing []*models.Recipe, c *counters) {
	if len(missing) == 0 {
		return
	}
	res := result.FromCache(ctx, r.policy, func(ctx context.Context) ([]int64, error) {
		return r.cache.InsertBatch(ctx, missing)
	})
	if !res.OK() {
		c.failed.Add(int64(len(missing)))
		r.logger.Warn(ctx, "failed to pull remote recipes", "count", len(missing), "result", res.String())
		return
	}
	for i, n := range res.Value() {
		if n > 0 {
			c.pulled.Add(1)
			continue
		}
		r.logger.Debug(ctx, "recipe appeared locally during sync", "id", missing[i].ID)
	}
}

// publish sends local-only records in chunks the remote store accepts.
func (r *Reconciler) publish(ctx context.Context, pending []*models.Recipe, c *counters) {
	for chunk := range slices.Chunk(pending, common.MaxRemoteBatchSize) {
		res := result.FromRemote(ctx, r.policy, result.Do(func(ctx context.Context) error {
			return r.remote.InsertOrUpdateBatch(ctx, chunk)
		}))
		if !res.OK() {
			c.failed.Add(int64(len(chunk)))
			r.logger.Warn(ctx, "failed to publish local recipes", "count", len(chunk), "result", res.String())
			continue
		}
		c.published.Add(int64(len(chunk)))
	}
}
