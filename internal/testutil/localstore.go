// Package testutil provides shared test helpers: an in-memory local store and
// an in-memory remote store with fault injection.
package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/dmitrijs2005/recipediary/internal/client/localdb"
	"github.com/dmitrijs2005/recipediary/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/recipediary/internal/client/repositories/recipes"
)

// NewLocalDB opens a migrated in-memory SQLite cache that is closed when the
// test ends.
func NewLocalDB(t testing.TB) *sql.DB {
	t.Helper()
	db, err := localdb.InitDatabase(context.Background(), ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func NewLocalStore(t testing.TB) *recipes.SQLiteRepository {
	t.Helper()
	return recipes.NewSQLiteRepository(NewLocalDB(t))
}

func NewMetadataStore(t testing.TB) *metadata.SQLiteRepository {
	t.Helper()
	return metadata.NewSQLiteRepository(NewLocalDB(t))
}
