package client

import (
	"context"

	"github.com/dmitrijs2005/recipediary/internal/client/models"
)

// RemoteStore is the remote replica: a live collection of recipes plus a
// collection of tombstones for deleted ones. The server stamps UpdatedAt on
// every upsert and tombstone insert.
type RemoteStore interface {
	InsertOrUpdate(ctx context.Context, r *models.Recipe) error
	// InsertOrUpdateBatch accepts at most common.MaxRemoteBatchSize recipes;
	// larger batches fail with common.ErrBatchTooLarge and write nothing.
	InsertOrUpdateBatch(ctx context.Context, rs []*models.Recipe) error
	Delete(ctx context.Context, id string) error

	InsertTombstone(ctx context.Context, r *models.Recipe) error
	DeleteTombstone(ctx context.Context, id string) error
	GetAllTombstones(ctx context.Context) ([]*models.Recipe, error)

	GetAll(ctx context.Context) ([]*models.Recipe, error)
	// SearchByID returns nil, nil when the recipe does not exist.
	SearchByID(ctx context.Context, id string) (*models.Recipe, error)
	// WipeAll clears both collections for the current user.
	WipeAll(ctx context.Context) error

	Ping(ctx context.Context) error

	ImageUploadURL(ctx context.Context) (key string, url string, err error)
	ImageURL(ctx context.Context, key string) (string, error)

	Close() error
}
