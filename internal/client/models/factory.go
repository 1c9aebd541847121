package models

import (
	"fmt"

	"github.com/google/uuid"
)

// Factory builds new recipes with generated ids and fresh timestamps.
type Factory struct {
	newID func() string
}

func NewFactory() *Factory {
	return &Factory{newID: uuid.NewString}
}

// NewRecipe creates a recipe. An empty id is replaced with a new UUID.
func (f *Factory) NewRecipe(id, title, ingredients, steps, imageRef string) *Recipe {
	if id == "" {
		id = f.newID()
	}
	now := Now()
	return &Recipe{
		ID:          id,
		Title:       title,
		Ingredients: ingredients,
		Steps:       steps,
		ImageRef:    imageRef,
		UpdatedAt:   now,
		CreatedAt:   now,
	}
}

// NewRecipeList creates n recipes with generated content, for seeding.
func (f *Factory) NewRecipeList(n int) []*Recipe {
	list := make([]*Recipe, 0, n)
	for i := 0; i < n; i++ {
		id := f.newID()
		list = append(list, f.NewRecipe(id,
			fmt.Sprintf("Recipe %d", i+1),
			"ingredients "+id,
			"steps "+id,
			"",
		))
	}
	return list
}
