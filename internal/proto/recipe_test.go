package proto

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/structpb"
)

func TestRecipeStruct_RoundTrip(t *testing.T) {
	in := &Recipe{
		ID:          "r1",
		Title:       "Borscht",
		Ingredients: "beets",
		Steps:       "simmer",
		ImageRef:    "recipes/r1",
		UpdatedAt:   1714564800123,
		CreatedAt:   1714564000000,
	}

	out, err := RecipeFromStruct(in.ToStruct())
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestRecipeFromStruct_MissingOptionalFields(t *testing.T) {
	s, err := structpb.NewStruct(map[string]any{"id": "r1", "title": "T", "image_ref": nil})
	require.NoError(t, err)

	r, err := RecipeFromStruct(s)
	require.NoError(t, err)
	assert.Equal(t, &Recipe{ID: "r1", Title: "T"}, r)
}

func TestRecipeFromStruct_Malformed(t *testing.T) {
	tests := map[string]map[string]any{
		"missing id":       {"title": "x"},
		"id not a string":  {"id": 5.0},
		"title is number":  {"id": "r", "title": 1.0},
		"fractional stamp": {"id": "r", "updated_at": 1.5},
		"stamp is string":  {"id": "r", "created_at": "yesterday"},
	}

	for name, fields := range tests {
		t.Run(name, func(t *testing.T) {
			s, err := structpb.NewStruct(fields)
			require.NoError(t, err)
			_, err = RecipeFromStruct(s)
			assert.True(t, errors.Is(err, ErrMalformedRecipe), "got %v", err)
		})
	}

	_, err := RecipeFromStruct(nil)
	assert.ErrorIs(t, err, ErrMalformedRecipe)
}

func TestRecipesList_RoundTrip(t *testing.T) {
	in := []*Recipe{{ID: "a", Title: "A"}, {ID: "b", Title: "B", UpdatedAt: 2}}

	out, err := RecipesFromList(RecipesToList(in))
	require.NoError(t, err)
	assert.Equal(t, in, out)

	empty, err := RecipesFromList(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestRecipesFromList_BadItem(t *testing.T) {
	l := &structpb.ListValue{Values: []*structpb.Value{structpb.NewStringValue("nope")}}
	_, err := RecipesFromList(l)
	assert.ErrorIs(t, err, ErrMalformedRecipe)
}

func TestImageUpload_RoundTrip(t *testing.T) {
	in := &ImageUpload{Key: "recipes/k", URL: "http://s3/recipes/k?sig"}
	out, err := ImageUploadFromStruct(in.ToStruct())
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
