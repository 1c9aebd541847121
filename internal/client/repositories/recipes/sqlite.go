package recipes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"

	"github.com/dmitrijs2005/recipediary/internal/client/models"
	"github.com/dmitrijs2005/recipediary/internal/dbx"
)

const recipeColumns = `id, title, ingredients, steps, image_ref, updated_at, created_at`

// SQLiteRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecipe(s rowScanner) (*models.Recipe, error) {
	var r models.Recipe
	var updatedAt, createdAt int64
	if err := s.Scan(&r.ID, &r.Title, &r.Ingredients, &r.Steps, &r.ImageRef, &updatedAt, &createdAt); err != nil {
		return nil, err
	}
	r.UpdatedAt = models.FromMillis(updatedAt)
	r.CreatedAt = models.FromMillis(createdAt)
	return &r, nil
}

func (r *SQLiteRepository) queryRecipes(ctx context.Context, query string, args ...any) ([]*models.Recipe, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select recipes: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Recipe, 0)
	for rows.Next() {
		item, err := scanRecipe(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recipe: %w", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func insertArgs(rec *models.Recipe) []any {
	return []any{
		rec.ID, rec.Title, rec.Ingredients, rec.Steps, rec.ImageRef,
		models.ToMillis(rec.UpdatedAt), models.ToMillis(rec.CreatedAt),
	}
}

func (r *SQLiteRepository) Insert(ctx context.Context, rec *models.Recipe) (int64, error) {
	query := `INSERT INTO recipes (` + recipeColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query, insertArgs(rec)...)
	if err != nil {
		return 0, fmt.Errorf("failed to insert recipe: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return n, nil
}

func (r *SQLiteRepository) InsertBatch(ctx context.Context, recs []*models.Recipe) ([]int64, error) {
	query := `INSERT OR IGNORE INTO recipes (` + recipeColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`

	result := make([]int64, 0, len(recs))
	err := dbx.InTx(ctx, r.db, func(ctx context.Context, tx dbx.DBTX) error {
		for _, rec := range recs {
			res, err := tx.ExecContext(ctx, query, insertArgs(rec)...)
			if err != nil {
				return fmt.Errorf("failed to insert recipe %s: %w", rec.ID, err)
			}
			n, err := res.RowsAffected()
			if err != nil {
				return fmt.Errorf("failed to get rows affected: %w", err)
			}
			if n == 0 {
				result = append(result, -1)
			} else {
				result = append(result, n)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM recipes WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete recipe: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return n, nil
}

// deleteChunkSize keeps each IN list well below SQLite's bound-variable limit.
const deleteChunkSize = 500

func (r *SQLiteRepository) DeleteBatch(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	var total int64
	err := dbx.InTx(ctx, r.db, func(ctx context.Context, tx dbx.DBTX) error {
		for chunk := range slices.Chunk(ids, deleteChunkSize) {
			args := make([]any, len(chunk))
			for i, id := range chunk {
				args[i] = id
			}
			query := `DELETE FROM recipes WHERE id IN (` + dbx.Placeholders(len(chunk)) + `)`

			res, err := tx.ExecContext(ctx, query, args...)
			if err != nil {
				return fmt.Errorf("failed to delete recipes: %w", err)
			}
			n, err := res.RowsAffected()
			if err != nil {
				return fmt.Errorf("failed to get rows affected: %w", err)
			}
			total += n
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *SQLiteRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM recipes`); err != nil {
		return fmt.Errorf("failed to delete recipes: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Update(ctx context.Context, id string, u models.RecipeUpdate) (int64, error) {
	updatedAt := models.Now()
	if u.UpdatedAt != nil {
		updatedAt = *u.UpdatedAt
	}

	query := `UPDATE recipes
		SET title = ?, ingredients = ?, steps = ?, image_ref = ?, updated_at = ?
		WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query,
		u.Title, u.Ingredients, u.Steps, u.ImageRef, models.ToMillis(updatedAt), id)
	if err != nil {
		return 0, fmt.Errorf("failed to update recipe: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return n, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.Recipe, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+recipeColumns+` FROM recipes WHERE id = ?`, id)

	rec, err := scanRecipe(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	return rec, nil
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]*models.Recipe, error) {
	return r.queryRecipes(ctx, `SELECT `+recipeColumns+` FROM recipes ORDER BY id`)
}

func (r *SQLiteRepository) Search(ctx context.Context, query, order string, page, pageSize int) ([]*models.Recipe, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	q := `SELECT ` + recipeColumns + ` FROM recipes
		WHERE title LIKE ? ESCAPE '\'
		ORDER BY ` + ParseOrder(order).orderBy() + `
		LIMIT ?`

	return r.queryRecipes(ctx, q, "%"+escapeLike(query)+"%", page*pageSize)
}

func (r *SQLiteRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM recipes`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count recipes: %w", err)
	}
	return n, nil
}
