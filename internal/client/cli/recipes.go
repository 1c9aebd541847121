package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/recipediary/internal/client/models"
	"github.com/dmitrijs2005/recipediary/internal/client/services"
)

var errUsage = errors.New("usage")

func (a *App) usage(text string) error {
	fmt.Fprintln(a.out, "Usage:", text)
	return errUsage
}

// List searches the cache. A query of "*" matches every recipe.
func (a *App) List(ctx context.Context, args []string) error {
	var query, order string
	page := 1

	if len(args) > 0 && args[0] != "*" {
		query = args[0]
	}
	if len(args) > 1 {
		order = args[1]
	}
	if len(args) > 2 {
		p, err := strconv.Atoi(args[2])
		if err != nil {
			return a.usage("list [query|*] [order] [page]")
		}
		page = p
	}

	st := a.recipes.Search(ctx, query, order, page, services.SearchRecipesEvent{})
	if !report(a.out, st) {
		return errors.New(st.Message())
	}
	if st.Data != nil && len(st.Data.Recipes) > 0 {
		renderRecipes(a.out, st.Data.Recipes)
	}
	return nil
}

func (a *App) Count(ctx context.Context) error {
	st := a.recipes.Count(ctx, services.GetNumRecipesInCacheEvent{})
	if !report(a.out, st) {
		return errors.New(st.Message())
	}
	fmt.Fprintf(a.out, "%d recipes\n", st.Data.NumRecipesCache)
	return nil
}

// load fetches a recipe for the commands that take an id.
func (a *App) load(ctx context.Context, id string) (*models.Recipe, error) {
	st := a.recipes.Get(ctx, id, services.GetRecipeEvent{ID: id})
	if st.Data == nil {
		report(a.out, st)
		return nil, errors.New(st.Message())
	}
	return st.Data.Recipe, nil
}

func (a *App) Show(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return a.usage("show <id>")
	}
	r, err := a.load(ctx, args[0])
	if err != nil {
		return err
	}
	renderRecipe(a.out, r)
	return nil
}

func (a *App) Add(ctx context.Context) error {
	title, err := GetSimpleText(a.reader, "Title", a.out)
	if err != nil {
		a.logger.Error(ctx, "input error", "error", err)
		return err
	}
	ingredients, err := GetMultiline(a.reader, "Ingredients", a.out)
	if err != nil {
		return err
	}
	steps, err := GetMultiline(a.reader, "Steps", a.out)
	if err != nil {
		return err
	}

	st := a.recipes.Insert(ctx, "", title, ingredients, steps, "", services.InsertNewRecipeEvent{
		Title: title, Ingredients: ingredients, Steps: steps,
	})
	if !report(a.out, st) {
		return errors.New(st.Message())
	}
	fmt.Fprintln(a.out, "ID:", st.Data.Recipe.ID)
	return nil
}

func (a *App) Edit(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return a.usage("edit <id>")
	}
	r, err := a.load(ctx, args[0])
	if err != nil {
		return err
	}

	edited := r.Clone()
	if edited.Title, err = GetTextOrKeep(a.reader, "Title", r.Title, a.out); err != nil {
		return err
	}
	if edited.Ingredients, err = GetMultilineOrKeep(a.reader, "Ingredients", r.Ingredients, a.out); err != nil {
		return err
	}
	if edited.Steps, err = GetMultilineOrKeep(a.reader, "Steps", r.Steps, a.out); err != nil {
		return err
	}

	st := a.recipes.Update(ctx, edited, services.UpdateRecipeEvent{})
	if !report(a.out, st) {
		return errors.New(st.Message())
	}
	return nil
}

func (a *App) Delete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return a.usage("delete <id>")
	}
	r, err := a.load(ctx, args[0])
	if err != nil {
		return err
	}
	st := a.recipes.Delete(ctx, r, services.DeleteRecipeEvent{Recipe: r})
	if !report(a.out, st) {
		return errors.New(st.Message())
	}
	return nil
}

// DeleteMany deletes every listed recipe. Unknown ids are passed through so
// that they are reported as failures.
func (a *App) DeleteMany(ctx context.Context, args []string) error {
	recs := make([]*models.Recipe, 0, len(args))
	for _, id := range args {
		st := a.recipes.Get(ctx, id, services.GetRecipeEvent{ID: id})
		if st.Data != nil {
			recs = append(recs, st.Data.Recipe)
			continue
		}
		recs = append(recs, &models.Recipe{ID: id})
	}

	st := a.recipes.DeleteMultiple(ctx, recs, services.DeleteMultipleRecipesEvent{Recipes: recs})
	if !report(a.out, st) {
		return errors.New(st.Message())
	}
	return nil
}
