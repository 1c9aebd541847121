// Package syncer brings the local cache and the remote store into agreement:
// deletions recorded as remote tombstones are applied locally first, then the
// live records of both stores are reconciled by last-write-wins.
package syncer

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/recipediary/internal/client/client"
	"github.com/dmitrijs2005/recipediary/internal/client/repositories/recipes"
	"github.com/dmitrijs2005/recipediary/internal/client/result"
	"github.com/dmitrijs2005/recipediary/internal/logging"
)

type DeletionReport struct {
	Tombstones int
	Deleted    int64
}

// DeletionSync removes every tombstoned recipe from the local cache. It is
// idempotent. Tombstones stay on the remote store so that every device sees
// them.
type DeletionSync struct {
	cache  recipes.Repository
	remote client.RemoteStore
	policy result.Policy
	logger logging.Logger
}

func NewDeletionSync(cache recipes.Repository, remote client.RemoteStore, policy result.Policy, logger logging.Logger) *DeletionSync {
	return &DeletionSync{cache: cache, remote: remote, policy: policy, logger: logger}
}

func (d *DeletionSync) Run(ctx context.Context) (DeletionReport, error) {
	var rep DeletionReport

	tombs := result.FromRemote(ctx, d.policy, d.remote.GetAllTombstones)
	if !tombs.OK() {
		d.logger.Error(ctx, "failed to fetch tombstones", "result", tombs.String())
		return rep, fmt.Errorf("fetch tombstones: %s: %w", tombs.Message(), tombs.Err())
	}

	ids := make([]string, 0, len(tombs.Value()))
	for _, t := range tombs.Value() {
		ids = append(ids, t.ID)
	}
	rep.Tombstones = len(ids)
	if len(ids) == 0 {
		return rep, nil
	}

	del := result.FromCache(ctx, d.policy, func(ctx context.Context) (int64, error) {
		return d.cache.DeleteBatch(ctx, ids)
	})
	if !del.OK() {
		d.logger.Error(ctx, "failed to apply tombstones", "result", del.String())
		return rep, fmt.Errorf("apply tombstones: %s: %w", del.Message(), del.Err())
	}
	rep.Deleted = del.Value()

	d.logger.Info(ctx, "deletion sync finished", "tombstones", rep.Tombstones, "deleted", rep.Deleted)
	return rep, nil
}
