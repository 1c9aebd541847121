// Package metadata keeps small key/value bookkeeping next to the recipe
// cache, such as the outcome of the last sync.
package metadata

import (
	"context"
)

const (
	KeyLastSyncAt     = "last_sync_at"
	KeyLastSyncResult = "last_sync_result"
)

type Repository interface {
	// Get returns "", false, nil when the key is absent.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string]string, error)
}
