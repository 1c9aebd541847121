// Package recipes implements the device-local recipe cache on SQLite.
//
// Timestamps are stored as INTEGER Unix milliseconds (see models.ToMillis);
// ordering by updated_at is therefore numeric and chronological.
package recipes

import (
	"context"

	"github.com/dmitrijs2005/recipediary/internal/client/models"
)

// Repository is the local store used by the interactors and the syncer.
type Repository interface {
	// Insert adds a new recipe and returns the number of rows written.
	// A duplicate id is an error.
	Insert(ctx context.Context, r *models.Recipe) (int64, error)

	// InsertBatch inserts recipes in one transaction, skipping ids that already
	// exist. The result holds 1 for every inserted row and -1 for every skip.
	InsertBatch(ctx context.Context, rs []*models.Recipe) ([]int64, error)

	// Delete removes a recipe; it returns 0 when the id was not present.
	Delete(ctx context.Context, id string) (int64, error)

	// DeleteBatch removes every listed id in one transaction and returns how
	// many rows went away. Any number of ids is accepted.
	DeleteBatch(ctx context.Context, ids []string) (int64, error)

	DeleteAll(ctx context.Context) error

	// Update replaces the editable fields of a recipe. When u.UpdatedAt is nil
	// the current time is stamped. Returns 0 when the id was not present.
	Update(ctx context.Context, id string, u models.RecipeUpdate) (int64, error)

	// GetByID returns nil, nil when the recipe does not exist.
	GetByID(ctx context.Context, id string) (*models.Recipe, error)

	GetAll(ctx context.Context) ([]*models.Recipe, error)

	// Search returns the first page*pageSize recipes whose title contains
	// query, sorted by the order token (see ParseOrder).
	Search(ctx context.Context, query, order string, page, pageSize int) ([]*models.Recipe, error)

	Count(ctx context.Context) (int, error)
}
