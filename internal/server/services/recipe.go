// Package services holds the server-side business logic behind the gRPC
// handlers: recipe and tombstone persistence and image URL vending.
package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/recipediary/internal/common"
	"github.com/dmitrijs2005/recipediary/internal/dbx"
	"github.com/dmitrijs2005/recipediary/internal/server/models"
	"github.com/dmitrijs2005/recipediary/internal/server/repositories/repomanager"
)

// RecipeService stores recipes and tombstones per user. Every write stamps
// UpdatedAt with the server clock.
type RecipeService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	now         func() time.Time
}

func NewRecipeService(db *sql.DB, repomanager repomanager.RepositoryManager) *RecipeService {
	return &RecipeService{
		db:          db,
		repomanager: repomanager,
		now:         func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	}
}

func (s *RecipeService) stamp(userID string, r *models.Recipe, now time.Time) {
	r.UserID = userID
	r.UpdatedAt = now
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
}

func (s *RecipeService) InsertOrUpdate(ctx context.Context, userID string, r *models.Recipe) error {
	s.stamp(userID, r, s.now())
	return s.repomanager.Recipes(s.db).Upsert(ctx, r)
}

// InsertOrUpdateBatch writes all recipes in one transaction. Batches larger
// than common.MaxRemoteBatchSize are rejected before anything is written.
func (s *RecipeService) InsertOrUpdateBatch(ctx context.Context, userID string, rs []*models.Recipe) error {
	if len(rs) > common.MaxRemoteBatchSize {
		return common.ErrBatchTooLarge
	}
	if len(rs) == 0 {
		return nil
	}

	now := s.now()
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Recipes(tx)
		for _, r := range rs {
			s.stamp(userID, r, now)
			if err := repo.Upsert(ctx, r); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("error upserting recipes: %w", err)
	}
	return nil
}

// Delete removes a live recipe. Deleting an absent id succeeds.
func (s *RecipeService) Delete(ctx context.Context, userID, id string) error {
	_, err := s.repomanager.Recipes(s.db).Delete(ctx, userID, id)
	return err
}

func (s *RecipeService) InsertTombstone(ctx context.Context, userID string, r *models.Recipe) error {
	s.stamp(userID, r, s.now())
	return s.repomanager.Tombstones(s.db).Upsert(ctx, r)
}

func (s *RecipeService) DeleteTombstone(ctx context.Context, userID, id string) error {
	_, err := s.repomanager.Tombstones(s.db).Delete(ctx, userID, id)
	return err
}

func (s *RecipeService) GetAllTombstones(ctx context.Context, userID string) ([]*models.Recipe, error) {
	return s.repomanager.Tombstones(s.db).ListAll(ctx, userID)
}

func (s *RecipeService) GetAll(ctx context.Context, userID string) ([]*models.Recipe, error) {
	return s.repomanager.Recipes(s.db).ListAll(ctx, userID)
}

// SearchByID returns common.ErrorNotFound for an unknown id.
func (s *RecipeService) SearchByID(ctx context.Context, userID, id string) (*models.Recipe, error) {
	return s.repomanager.Recipes(s.db).Get(ctx, userID, id)
}

// WipeAll clears the user's recipes and tombstones together.
func (s *RecipeService) WipeAll(ctx context.Context, userID string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.repomanager.Recipes(tx).DeleteAll(ctx, userID); err != nil {
			return err
		}
		_, err := s.repomanager.Tombstones(tx).DeleteAll(ctx, userID)
		return err
	})
}
