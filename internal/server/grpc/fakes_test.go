package grpc

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/recipediary/internal/common"
	"github.com/dmitrijs2005/recipediary/internal/server/models"
	"github.com/dmitrijs2005/recipediary/internal/server/services"
)

// memRecipes is an in-memory recipeService that stamps times like the real one.
type memRecipes struct {
	mu         sync.Mutex
	recipes    map[string]*models.Recipe
	tombstones map[string]*models.Recipe
	err        error
	now        time.Time
}

func newMemRecipes() *memRecipes {
	return &memRecipes{
		recipes:    map[string]*models.Recipe{},
		tombstones: map[string]*models.Recipe{},
		now:        time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC),
	}
}

func (m *memRecipes) fail(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

func k(userID, id string) string { return userID + "/" + id }

func (m *memRecipes) put(dst map[string]*models.Recipe, userID string, r *models.Recipe) {
	c := *r
	c.UserID = userID
	c.UpdatedAt = m.now
	if c.CreatedAt.IsZero() {
		c.CreatedAt = m.now
	}
	dst[k(userID, r.ID)] = &c
}

func list(src map[string]*models.Recipe, userID string) []*models.Recipe {
	out := make([]*models.Recipe, 0)
	for _, r := range src {
		if r.UserID == userID {
			c := *r
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (m *memRecipes) InsertOrUpdate(ctx context.Context, userID string, r *models.Recipe) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.put(m.recipes, userID, r)
	return nil
}

func (m *memRecipes) InsertOrUpdateBatch(ctx context.Context, userID string, rs []*models.Recipe) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if len(rs) > common.MaxRemoteBatchSize {
		return common.ErrBatchTooLarge
	}
	for _, r := range rs {
		m.put(m.recipes, userID, r)
	}
	return nil
}

func (m *memRecipes) Delete(ctx context.Context, userID, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.recipes, k(userID, id))
	return m.err
}

func (m *memRecipes) InsertTombstone(ctx context.Context, userID string, r *models.Recipe) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.put(m.tombstones, userID, r)
	return nil
}

func (m *memRecipes) DeleteTombstone(ctx context.Context, userID, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tombstones, k(userID, id))
	return m.err
}

func (m *memRecipes) GetAllTombstones(ctx context.Context, userID string) ([]*models.Recipe, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return list(m.tombstones, userID), m.err
}

func (m *memRecipes) GetAll(ctx context.Context, userID string) ([]*models.Recipe, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return list(m.recipes, userID), nil
}

func (m *memRecipes) SearchByID(ctx context.Context, userID, id string) (*models.Recipe, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.recipes[k(userID, id)]
	if !ok {
		return nil, common.ErrorNotFound
	}
	c := *r
	return &c, nil
}

func (m *memRecipes) WipeAll(ctx context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for key, r := range m.recipes {
		if r.UserID == userID {
			delete(m.recipes, key)
		}
	}
	for key, r := range m.tombstones {
		if r.UserID == userID {
			delete(m.tombstones, key)
		}
	}
	return nil
}

type fakeImages struct{}

func (fakeImages) UploadURL(ctx context.Context, userID string) (string, string, error) {
	key := "recipes/" + userID + "/img"
	return key, "https://s3/put/" + key, nil
}

func (fakeImages) DownloadURL(ctx context.Context, userID, key string) (string, error) {
	if key != "recipes/"+userID+"/img" {
		return "", services.ErrForeignImageKey
	}
	return "https://s3/get/" + key, nil
}
