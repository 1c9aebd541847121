package metadata

import (
	"context"
	"strconv"
	"time"
)

type LastSync struct {
	At time.Time
	OK bool
}

// SaveLastSync records when a sync finished and whether both phases succeeded.
func SaveLastSync(ctx context.Context, r Repository, s LastSync) error {
	if err := r.Set(ctx, KeyLastSyncAt, strconv.FormatInt(s.At.UnixMilli(), 10)); err != nil {
		return err
	}
	return r.Set(ctx, KeyLastSyncResult, strconv.FormatBool(s.OK))
}

// LoadLastSync returns nil when no sync has been recorded. A malformed value
// is treated as absent.
func LoadLastSync(ctx context.Context, r Repository) (*LastSync, error) {
	at, ok, err := r.Get(ctx, KeyLastSyncAt)
	if err != nil || !ok {
		return nil, err
	}
	ms, err := strconv.ParseInt(at, 10, 64)
	if err != nil {
		return nil, nil
	}

	res, _, err := r.Get(ctx, KeyLastSyncResult)
	if err != nil {
		return nil, err
	}
	okRes, _ := strconv.ParseBool(res)

	return &LastSync{At: time.UnixMilli(ms).UTC(), OK: okRes}, nil
}
