package syncer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/recipediary/internal/client/models"
	"github.com/dmitrijs2005/recipediary/internal/client/repositories/recipes"
	"github.com/dmitrijs2005/recipediary/internal/client/result"
	"github.com/dmitrijs2005/recipediary/internal/logging"
	"github.com/dmitrijs2005/recipediary/internal/testutil"
	"github.com/stretchr/testify/require"
)

var (
	testPolicy = result.Policy{CacheTimeout: time.Second, RemoteTimeout: time.Second}
	base       = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
)

func rec(id, title string, updated time.Duration) *models.Recipe {
	return &models.Recipe{
		ID:          id,
		Title:       title,
		Ingredients: "ingredients " + id,
		Steps:       "steps " + id,
		UpdatedAt:   base.Add(updated),
		CreatedAt:   base,
	}
}

func seedLocal(t *testing.T, store recipes.Repository, rs ...*models.Recipe) {
	t.Helper()
	for _, r := range rs {
		_, err := store.Insert(context.Background(), r)
		require.NoError(t, err)
	}
}

func localTitles(t *testing.T, store recipes.Repository) map[string]string {
	t.Helper()
	all, err := store.GetAll(context.Background())
	require.NoError(t, err)
	out := make(map[string]string, len(all))
	for _, r := range all {
		out[r.ID] = r.Title
	}
	return out
}

func newReconciler(t *testing.T) (*Reconciler, *recipes.SQLiteRepository, *testutil.FakeRemote) {
	t.Helper()
	store := testutil.NewLocalStore(t)
	remote := testutil.NewFakeRemote()
	return NewReconciler(store, remote, testPolicy, logging.NewDiscardLogger(), 4), store, remote
}

// brokenCache fails every GetAll.
type brokenCache struct {
	recipes.Repository
}

func (brokenCache) GetAll(context.Context) ([]*models.Recipe, error) {
	return nil, errors.New("database disk image is malformed")
}
