// Package recipes provides PostgreSQL-backed repositories for live recipes
// and for tombstones. Both tables share one schema, so a single
// implementation serves either, selected by table name.
package recipes

import (
	"context"

	"github.com/dmitrijs2005/recipediary/internal/server/models"
)

const (
	TableRecipes    = "recipes"
	TableTombstones = "deleted_recipes"
)

type Repository interface {
	// Upsert writes r, replacing every field of an existing row with the
	// same (user_id, id).
	Upsert(ctx context.Context, r *models.Recipe) error
	// Get returns common.ErrorNotFound when the row does not exist.
	Get(ctx context.Context, userID, id string) (*models.Recipe, error)
	ListAll(ctx context.Context, userID string) ([]*models.Recipe, error)
	// Delete returns the number of removed rows; 0 is not an error.
	Delete(ctx context.Context, userID, id string) (int64, error)
	DeleteAll(ctx context.Context, userID string) (int64, error)
}
