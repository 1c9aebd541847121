// Package services holds the client interactors. Each operation writes to the
// local cache first, reports exactly one terminal state, and only then
// propagates the change to the remote store on a best-effort basis.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/recipediary/internal/client/client"
	"github.com/dmitrijs2005/recipediary/internal/client/models"
	"github.com/dmitrijs2005/recipediary/internal/client/repositories/recipes"
	"github.com/dmitrijs2005/recipediary/internal/client/response"
	"github.com/dmitrijs2005/recipediary/internal/client/result"
	"github.com/dmitrijs2005/recipediary/internal/logging"
	"go.uber.org/multierr"
)

const (
	InsertRecipeSuccess = "Successfully inserted new recipe."
	InsertRecipeFailed  = "Failed to insert new recipe."

	UpdateRecipeSuccess  = "Successfully updated recipe."
	UpdateRecipeFailed   = "Failed to update recipe."
	UpdateRecipeFailedPK = "Update failed. Recipe is missing primary key."

	DeleteRecipeSuccess = "Successfully deleted recipe."
	DeleteRecipeFailed  = "Failed to delete recipe."

	DeleteRecipesSuccess       = "Successfully deleted recipes."
	DeleteRecipesErrors        = "Not all the recipes you selected were deleted. There was some errors."
	DeleteRecipesYouMustSelect = "You haven't selected any recipes to delete."

	SearchRecipesSuccess          = "Successfully retrieved list of recipes."
	SearchRecipesNoMatchingResult = "No recipes found."

	GetNumRecipesSuccess = "Successfully retrieved the number of recipes from the cache."

	GetRecipeSuccess  = "Successfully retrieved recipe."
	GetRecipeNotFound = "Recipe not found."
)

type RecipeService struct {
	cache   recipes.Repository
	remote  client.RemoteStore
	factory *models.Factory
	policy  result.Policy
	logger  logging.Logger
}

func NewRecipeService(cache recipes.Repository, remote client.RemoteStore, factory *models.Factory, policy result.Policy, logger logging.Logger) *RecipeService {
	if policy.Logger == nil {
		policy.Logger = logger
	}
	return &RecipeService{cache: cache, remote: remote, factory: factory, policy: policy, logger: logger}
}

func msg(text string, ui response.UIComponentType, mt response.MessageType) response.Response {
	return response.Response{Message: text, UIComponentType: ui, MessageType: mt}
}

func invalid[T any](ev response.StateEvent, err error) response.DataState[T] {
	return response.NoData[T](msg(models.ValidationMessage(err), response.UIComponentDialog, response.MessageError), ev)
}

// propagate runs a remote write after a successful local change. Failures are
// only logged; the next sync reconciles them.
func (s *RecipeService) propagate(ctx context.Context, op string, call func(context.Context) error) {
	r := result.FromRemote(ctx, s.policy, result.Do(call))
	if !r.OK() {
		s.logger.Warn(ctx, "remote propagation failed", "op", op, "result", r.String())
	}
}

// Insert creates a recipe in the cache and then pushes it to the remote
// store. An empty id gets a generated one.
func (s *RecipeService) Insert(ctx context.Context, id, title, ingredients, steps, imageRef string, ev response.StateEvent) response.DataState[DetailViewState] {
	rec := s.factory.NewRecipe(id, title, ingredients, steps, imageRef)
	if err := rec.Validate(); err != nil {
		return invalid[DetailViewState](ev, err)
	}

	res := result.FromCache(ctx, s.policy, func(ctx context.Context) (int64, error) {
		return s.cache.Insert(ctx, rec)
	})

	inserted := false
	st := response.HandleCache(res, ev, func(n int64) response.DataState[DetailViewState] {
		if n > 0 {
			inserted = true
			return response.Data(msg(InsertRecipeSuccess, response.UIComponentToast, response.MessageSuccess),
				&DetailViewState{Recipe: rec.Clone()}, ev)
		}
		return response.NoData[DetailViewState](msg(InsertRecipeFailed, response.UIComponentSnackBar, response.MessageError), ev)
	})

	if inserted {
		s.propagate(ctx, "insert", func(ctx context.Context) error {
			return s.remote.InsertOrUpdate(ctx, rec)
		})
	}
	return st
}

// Update replaces the editable fields of rec in the cache, stamping the
// current time, then pushes the stored record to the remote store.
func (s *RecipeService) Update(ctx context.Context, rec *models.Recipe, ev response.StateEvent) response.DataState[DetailViewState] {
	if rec == nil || rec.ID == "" {
		return response.NoData[DetailViewState](msg(UpdateRecipeFailedPK, response.UIComponentDialog, response.MessageError), ev)
	}
	if err := rec.Validate(); err != nil {
		return invalid[DetailViewState](ev, err)
	}

	res := result.FromCache(ctx, s.policy, func(ctx context.Context) (int64, error) {
		return s.cache.Update(ctx, rec.ID, rec.AsUpdate(false))
	})

	var stored *models.Recipe
	st := response.HandleCache(res, ev, func(n int64) response.DataState[DetailViewState] {
		if n <= 0 {
			return response.NoData[DetailViewState](msg(UpdateRecipeFailed, response.UIComponentToast, response.MessageError), ev)
		}
		stored = s.reload(ctx, rec)
		return response.Data(msg(UpdateRecipeSuccess, response.UIComponentToast, response.MessageSuccess),
			&DetailViewState{Recipe: stored.Clone()}, ev)
	})

	if stored != nil {
		s.propagate(ctx, "update", func(ctx context.Context) error {
			return s.remote.InsertOrUpdate(ctx, stored)
		})
	}
	return st
}

// reload reads back an updated record. When that fails the caller's copy is
// used with the fresh fields it already carries.
func (s *RecipeService) reload(ctx context.Context, rec *models.Recipe) *models.Recipe {
	r := result.FromCache(ctx, s.policy, func(ctx context.Context) (*models.Recipe, error) {
		return s.cache.GetByID(ctx, rec.ID)
	})
	if r.OK() && r.Value() != nil {
		return r.Value()
	}
	return rec.Clone()
}

// Delete removes rec from the cache. On success it is removed from the remote
// store and a tombstone is recorded so other devices drop it on their next sync.
func (s *RecipeService) Delete(ctx context.Context, rec *models.Recipe, ev response.StateEvent) response.DataState[DetailViewState] {
	if rec == nil || rec.ID == "" {
		return response.NoData[DetailViewState](msg(DeleteRecipeFailed, response.UIComponentToast, response.MessageError), ev)
	}

	res := result.FromCache(ctx, s.policy, func(ctx context.Context) (int64, error) {
		return s.cache.Delete(ctx, rec.ID)
	})

	deleted := false
	st := response.HandleCache(res, ev, func(n int64) response.DataState[DetailViewState] {
		if n > 0 {
			deleted = true
			return response.NoData[DetailViewState](msg(DeleteRecipeSuccess, response.UIComponentSnackBar, response.MessageSuccess), ev)
		}
		return response.NoData[DetailViewState](msg(DeleteRecipeFailed, response.UIComponentToast, response.MessageError), ev)
	})

	if deleted {
		s.forgetRemote(ctx, rec)
	}
	return st
}

func (s *RecipeService) forgetRemote(ctx context.Context, rec *models.Recipe) {
	s.propagate(ctx, "delete", func(ctx context.Context) error {
		return s.remote.Delete(ctx, rec.ID)
	})
	s.propagate(ctx, "tombstone", func(ctx context.Context) error {
		return s.remote.InsertTombstone(ctx, rec)
	})
}

// DeleteMultiple deletes each recipe from the cache, continuing past
// failures. A recipe that was not present counts as a failure. Only recipes
// that were actually deleted are forwarded to the remote store.
func (s *RecipeService) DeleteMultiple(ctx context.Context, recs []*models.Recipe, ev response.StateEvent) response.DataState[ListViewState] {
	if len(recs) == 0 {
		return response.NoData[ListViewState](msg(DeleteRecipesYouMustSelect, response.UIComponentToast, response.MessageInfo), ev)
	}

	var errs error
	deleted := make([]*models.Recipe, 0, len(recs))

	for _, rec := range recs {
		res := result.FromCache(ctx, s.policy, func(ctx context.Context) (int64, error) {
			return s.cache.Delete(ctx, rec.ID)
		})
		switch {
		case !res.OK():
			errs = multierr.Append(errs, fmt.Errorf("recipe %s: %s", rec.ID, res.Message()))
		case res.Value() <= 0:
			errs = multierr.Append(errs, fmt.Errorf("recipe %s: not found", rec.ID))
		default:
			deleted = append(deleted, rec)
		}
	}

	var st response.DataState[ListViewState]
	if errs != nil {
		s.logger.Warn(ctx, "some recipes were not deleted",
			"failed", len(multierr.Errors(errs)), "deleted", len(deleted), "error", errs)
		st = response.NoData[ListViewState](msg(DeleteRecipesErrors, response.UIComponentDialog, response.MessageError), ev)
	} else {
		st = response.NoData[ListViewState](msg(DeleteRecipesSuccess, response.UIComponentToast, response.MessageSuccess), ev)
	}

	for _, rec := range deleted {
		s.forgetRemote(ctx, rec)
	}
	return st
}

// Search returns the first page*DefaultPageSize recipes whose title contains
// query, in the order given by the order token.
func (s *RecipeService) Search(ctx context.Context, query, order string, page int, ev response.StateEvent) response.DataState[ListViewState] {
	if page <= 0 {
		page = 1
	}

	res := result.FromCache(ctx, s.policy, func(ctx context.Context) ([]*models.Recipe, error) {
		return s.cache.Search(ctx, query, order, page, recipes.DefaultPageSize)
	})

	return response.HandleCache(res, ev, func(list []*models.Recipe) response.DataState[ListViewState] {
		m := msg(SearchRecipesSuccess, response.UIComponentNone, response.MessageSuccess)
		if len(list) == 0 {
			m = msg(SearchRecipesNoMatchingResult, response.UIComponentToast, response.MessageSuccess)
		}
		return response.Data(m, &ListViewState{Recipes: list, Query: query, Order: order, Page: page}, ev)
	})
}

func (s *RecipeService) Count(ctx context.Context, ev response.StateEvent) response.DataState[ListViewState] {
	res := result.FromCache(ctx, s.policy, s.cache.Count)

	return response.HandleCache(res, ev, func(n int) response.DataState[ListViewState] {
		return response.Data(msg(GetNumRecipesSuccess, response.UIComponentNone, response.MessageSuccess),
			&ListViewState{NumRecipesCache: n}, ev)
	})
}

func (s *RecipeService) Get(ctx context.Context, id string, ev response.StateEvent) response.DataState[DetailViewState] {
	res := result.FromCache(ctx, s.policy, func(ctx context.Context) (*models.Recipe, error) {
		return s.cache.GetByID(ctx, id)
	})

	if res.OK() && res.Value() == nil {
		return response.NoData[DetailViewState](msg(GetRecipeNotFound, response.UIComponentToast, response.MessageError), ev)
	}

	return response.HandleCache(res, ev, func(r *models.Recipe) response.DataState[DetailViewState] {
		return response.Data(msg(GetRecipeSuccess, response.UIComponentNone, response.MessageSuccess),
			&DetailViewState{Recipe: r}, ev)
	})
}
