package recipes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/recipediary/internal/common"
	"github.com/dmitrijs2005/recipediary/internal/dbx"
	"github.com/dmitrijs2005/recipediary/internal/server/models"
)

const columns = `user_id, id, title, ingredients, steps, image_ref, updated_at, created_at`

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db    dbx.DBTX
	table string
}

// NewPostgresRepository binds a repository to table, which must be
// TableRecipes or TableTombstones.
func NewPostgresRepository(db dbx.DBTX, table string) *PostgresRepository {
	return &PostgresRepository{db: db, table: table}
}

func (r *PostgresRepository) Upsert(ctx context.Context, rec *models.Recipe) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (`+columns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id, id)
		DO UPDATE SET
			title = EXCLUDED.title,
			ingredients = EXCLUDED.ingredients,
			steps = EXCLUDED.steps,
			image_ref = EXCLUDED.image_ref,
			updated_at = EXCLUDED.updated_at,
			created_at = EXCLUDED.created_at;
	`, r.table)

	_, err := r.db.ExecContext(ctx, query,
		rec.UserID, rec.ID, rec.Title, rec.Ingredients, rec.Steps, rec.ImageRef, rec.UpdatedAt, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(s scanner) (*models.Recipe, error) {
	var item models.Recipe
	if err := s.Scan(&item.UserID, &item.ID, &item.Title, &item.Ingredients, &item.Steps,
		&item.ImageRef, &item.UpdatedAt, &item.CreatedAt); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *PostgresRepository) Get(ctx context.Context, userID, id string) (*models.Recipe, error) {
	query := fmt.Sprintf(`SELECT `+columns+` FROM %s WHERE user_id=$1 AND id=$2`, r.table)

	item, err := scan(r.db.QueryRowContext(ctx, query, userID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("failed to select %s: %w", r.table, err)
	}
	return item, nil
}

func (r *PostgresRepository) ListAll(ctx context.Context, userID string) ([]*models.Recipe, error) {
	query := fmt.Sprintf(`SELECT `+columns+` FROM %s WHERE user_id=$1 ORDER BY id`, r.table)

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select %s: %w", r.table, err)
	}
	defer rows.Close()

	result := make([]*models.Recipe, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) (int64, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE user_id=$1 AND id=$2`, r.table)
	return r.exec(ctx, query, userID, id)
}

func (r *PostgresRepository) DeleteAll(ctx context.Context, userID string) (int64, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE user_id=$1`, r.table)
	return r.exec(ctx, query, userID)
}

func (r *PostgresRepository) exec(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected error: %w", err)
	}
	return n, nil
}
