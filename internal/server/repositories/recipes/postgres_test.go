package recipes

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/recipediary/internal/common"
	"github.com/dmitrijs2005/recipediary/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ts = time.Date(2024, 4, 1, 9, 30, 0, 0, time.UTC)

var resultColumns = []string{"user_id", "id", "title", "ingredients", "steps", "image_ref", "updated_at", "created_at"}

func newRepoWithMock(t *testing.T, table string) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return NewPostgresRepository(db, table), mock, db
}

func sample() *models.Recipe {
	return &models.Recipe{
		UserID: "u1", ID: "r1", Title: "Soup", Ingredients: "water", Steps: "boil",
		ImageRef: "recipes/u1/img", UpdatedAt: ts, CreatedAt: ts.Add(-time.Hour),
	}
}

/***** Upsert *****/

func TestUpsert_UsesTable(t *testing.T) {
	for _, table := range []string{TableRecipes, TableTombstones} {
		t.Run(table, func(t *testing.T) {
			repo, mock, db := newRepoWithMock(t, table)
			defer db.Close()

			q := `INSERT INTO ` + table + ` \(user_id, id, .*\).* ON CONFLICT \(user_id, id\)\s+DO UPDATE SET .*created_at = EXCLUDED\.created_at;`
			mock.ExpectExec(q).
				WithArgs("u1", "r1", "Soup", "water", "boil", "recipes/u1/img", ts, ts.Add(-time.Hour)).
				WillReturnResult(sqlmock.NewResult(0, 1))

			require.NoError(t, repo.Upsert(context.Background(), sample()))
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUpsert_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t, TableRecipes)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO recipes`).WillReturnError(errors.New("db is down"))

	err := repo.Upsert(context.Background(), sample())
	require.Error(t, err)
	assert.Regexp(t, regexp.MustCompile(`db error: .*db is down`), err.Error())
}

/***** Get *****/

func TestGet_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t, TableRecipes)
	defer db.Close()

	rows := sqlmock.NewRows(resultColumns).
		AddRow("u1", "r1", "Soup", "water", "boil", "recipes/u1/img", ts, ts.Add(-time.Hour))
	mock.ExpectQuery(`SELECT user_id, id, .* FROM recipes WHERE user_id=\$1 AND id=\$2`).
		WithArgs("u1", "r1").
		WillReturnRows(rows)

	got, err := repo.Get(context.Background(), "u1", "r1")
	require.NoError(t, err)
	assert.Equal(t, sample(), got)
}

func TestGet_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t, TableTombstones)
	defer db.Close()

	mock.ExpectQuery(`FROM deleted_recipes WHERE`).
		WithArgs("u1", "nope").
		WillReturnRows(sqlmock.NewRows(resultColumns))

	_, err := repo.Get(context.Background(), "u1", "nope")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestGet_QueryError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t, TableRecipes)
	defer db.Close()

	mock.ExpectQuery(`FROM recipes WHERE`).WillReturnError(errors.New("boom"))

	_, err := repo.Get(context.Background(), "u1", "r1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrorNotFound)
}

/***** ListAll *****/

func TestListAll(t *testing.T) {
	repo, mock, db := newRepoWithMock(t, TableRecipes)
	defer db.Close()

	rows := sqlmock.NewRows(resultColumns).
		AddRow("u1", "a", "A", "", "", "", ts, ts).
		AddRow("u1", "b", "B", "", "", "", ts, ts)
	mock.ExpectQuery(`SELECT .* FROM recipes WHERE user_id=\$1 ORDER BY id`).
		WithArgs("u1").
		WillReturnRows(rows)

	got, err := repo.ListAll(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "B", got[1].Title)
}

func TestListAll_Empty(t *testing.T) {
	repo, mock, db := newRepoWithMock(t, TableRecipes)
	defer db.Close()

	mock.ExpectQuery(`FROM recipes`).WithArgs("u1").WillReturnRows(sqlmock.NewRows(resultColumns))

	got, err := repo.ListAll(context.Background(), "u1")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListAll_RowError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t, TableRecipes)
	defer db.Close()

	rows := sqlmock.NewRows(resultColumns).
		AddRow("u1", "a", "A", "", "", "", ts, ts).
		RowError(0, errors.New("row-err"))
	mock.ExpectQuery(`FROM recipes`).WithArgs("u1").WillReturnRows(rows)

	_, err := repo.ListAll(context.Background(), "u1")
	assert.Error(t, err)
}

/***** Delete *****/

func TestDelete(t *testing.T) {
	repo, mock, db := newRepoWithMock(t, TableTombstones)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM deleted_recipes WHERE user_id=\$1 AND id=\$2`).
		WithArgs("u1", "r1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM deleted_recipes WHERE user_id=\$1 AND id=\$2`).
		WithArgs("u1", "r1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	n, err := repo.Delete(context.Background(), "u1", "r1")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	n, err = repo.Delete(context.Background(), "u1", "r1")
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)
}

func TestDeleteAll_RowsAffectedError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t, TableRecipes)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM recipes WHERE user_id=\$1`).
		WithArgs("u1").
		WillReturnResult(sqlmock.NewErrorResult(errors.New("rows-err")))

	_, err := repo.DeleteAll(context.Background(), "u1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rows affected error")
}
