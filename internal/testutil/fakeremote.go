package testutil

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/recipediary/internal/client/client"
	"github.com/dmitrijs2005/recipediary/internal/client/models"
	"github.com/dmitrijs2005/recipediary/internal/common"
)

// Method names accepted by FakeRemote.FailOn and reported by Calls.
const (
	MethodInsertOrUpdate      = "InsertOrUpdate"
	MethodInsertOrUpdateBatch = "InsertOrUpdateBatch"
	MethodDelete              = "Delete"
	MethodInsertTombstone     = "InsertTombstone"
	MethodDeleteTombstone     = "DeleteTombstone"
	MethodGetAllTombstones    = "GetAllTombstones"
	MethodGetAll              = "GetAll"
	MethodSearchByID          = "SearchByID"
	MethodWipeAll             = "WipeAll"
	MethodPing                = "Ping"
	MethodImageUploadURL      = "ImageUploadURL"
	MethodImageURL            = "ImageURL"
)

// FakeRemote is an in-memory client.RemoteStore. Like the real server it
// stamps UpdatedAt on every upsert and tombstone insert unless KeepTimestamps
// is set. Stored records are copies, so callers may mutate what they pass in
// or get back.
type FakeRemote struct {
	mu         sync.Mutex
	recipes    map[string]*models.Recipe
	tombstones map[string]*models.Recipe
	failures   map[string]error
	hang       map[string]bool
	calls      map[string]int

	// KeepTimestamps stores UpdatedAt as sent instead of stamping now.
	KeepTimestamps bool
}

var _ client.RemoteStore = (*FakeRemote)(nil)

func NewFakeRemote() *FakeRemote {
	return &FakeRemote{
		recipes:    make(map[string]*models.Recipe),
		tombstones: make(map[string]*models.Recipe),
		failures:   make(map[string]error),
		hang:       make(map[string]bool),
		calls:      make(map[string]int),
	}
}

// FailOn makes every call of method return err. A nil err clears the fault.
func (f *FakeRemote) FailOn(method string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err == nil {
		delete(f.failures, method)
		return
	}
	f.failures[method] = err
}

// HangOn makes method block until its context is done.
func (f *FakeRemote) HangOn(method string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.hang[method] = true
}

// Calls returns how many times method was invoked.
func (f *FakeRemote) Calls(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[method]
}

// Seed stores recipes as they are, without stamping.
func (f *FakeRemote) Seed(rs ...*models.Recipe) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range rs {
		f.recipes[r.ID] = r.Clone()
	}
}

// SeedTombstones stores tombstones as they are, without stamping.
func (f *FakeRemote) SeedTombstones(rs ...*models.Recipe) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range rs {
		f.tombstones[r.ID] = r.Clone()
	}
}

// Recipe returns a copy of the live record with id, or nil.
func (f *FakeRemote) Recipe(id string) *models.Recipe {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.recipes[id].Clone()
}

// Tombstone returns a copy of the tombstone with id, or nil.
func (f *FakeRemote) Tombstone(id string) *models.Recipe {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.tombstones[id].Clone()
}

func (f *FakeRemote) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.recipes)
}

// enter records the call and applies injected faults. It must be called
// without f.mu held.
func (f *FakeRemote) enter(ctx context.Context, method string) error {
	f.mu.Lock()
	f.calls[method]++
	err := f.failures[method]
	hang := f.hang[method]
	f.mu.Unlock()

	if hang {
		<-ctx.Done()
		return ctx.Err()
	}
	return err
}

func (f *FakeRemote) stamp(r *models.Recipe) *models.Recipe {
	c := r.Clone()
	if f.KeepTimestamps {
		return c
	}
	now := models.Now()
	c.UpdatedAt = now
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	return c
}

func sorted(m map[string]*models.Recipe) []*models.Recipe {
	out := make([]*models.Recipe, 0, len(m))
	for _, r := range m {
		out = append(out, r.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (f *FakeRemote) InsertOrUpdate(ctx context.Context, r *models.Recipe) error {
	if err := f.enter(ctx, MethodInsertOrUpdate); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recipes[r.ID] = f.stamp(r)
	return nil
}

func (f *FakeRemote) InsertOrUpdateBatch(ctx context.Context, rs []*models.Recipe) error {
	if err := f.enter(ctx, MethodInsertOrUpdateBatch); err != nil {
		return err
	}
	if len(rs) > common.MaxRemoteBatchSize {
		return fmt.Errorf("%w: %d records", common.ErrBatchTooLarge, len(rs))
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range rs {
		f.recipes[r.ID] = f.stamp(r)
	}
	return nil
}

func (f *FakeRemote) Delete(ctx context.Context, id string) error {
	if err := f.enter(ctx, MethodDelete); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.recipes, id)
	return nil
}

func (f *FakeRemote) InsertTombstone(ctx context.Context, r *models.Recipe) error {
	if err := f.enter(ctx, MethodInsertTombstone); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tombstones[r.ID] = f.stamp(r)
	return nil
}

func (f *FakeRemote) DeleteTombstone(ctx context.Context, id string) error {
	if err := f.enter(ctx, MethodDeleteTombstone); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.tombstones, id)
	return nil
}

func (f *FakeRemote) GetAllTombstones(ctx context.Context) ([]*models.Recipe, error) {
	if err := f.enter(ctx, MethodGetAllTombstones); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return sorted(f.tombstones), nil
}

func (f *FakeRemote) GetAll(ctx context.Context) ([]*models.Recipe, error) {
	if err := f.enter(ctx, MethodGetAll); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return sorted(f.recipes), nil
}

func (f *FakeRemote) SearchByID(ctx context.Context, id string) (*models.Recipe, error) {
	if err := f.enter(ctx, MethodSearchByID); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.recipes[id].Clone(), nil
}

func (f *FakeRemote) WipeAll(ctx context.Context) error {
	if err := f.enter(ctx, MethodWipeAll); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	clear(f.recipes)
	clear(f.tombstones)
	return nil
}

func (f *FakeRemote) Ping(ctx context.Context) error {
	return f.enter(ctx, MethodPing)
}

func (f *FakeRemote) ImageUploadURL(ctx context.Context) (string, string, error) {
	if err := f.enter(ctx, MethodImageUploadURL); err != nil {
		return "", "", err
	}
	key := fmt.Sprintf("images/%d", time.Now().UnixNano())
	return key, "https://fake.invalid/upload/" + key, nil
}

func (f *FakeRemote) ImageURL(ctx context.Context, key string) (string, error) {
	if err := f.enter(ctx, MethodImageURL); err != nil {
		return "", err
	}
	return "https://fake.invalid/get/" + key, nil
}

func (f *FakeRemote) Close() error { return nil }
