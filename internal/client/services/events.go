package services

import "github.com/dmitrijs2005/recipediary/internal/client/models"

// Events identify the user action behind a DataState. Their ErrorInfo text
// prefixes every failure message.

type InsertNewRecipeEvent struct {
	Title       string
	Ingredients string
	Steps       string
	ImageRef    string
}

func (InsertNewRecipeEvent) ErrorInfo() string              { return "Error inserting new recipe." }
func (InsertNewRecipeEvent) EventName() string              { return "InsertNewRecipeEvent" }
func (InsertNewRecipeEvent) ShouldDisplayProgressBar() bool { return true }

type UpdateRecipeEvent struct{}

func (UpdateRecipeEvent) ErrorInfo() string              { return "Error updating recipe." }
func (UpdateRecipeEvent) EventName() string              { return "UpdateRecipeEvent" }
func (UpdateRecipeEvent) ShouldDisplayProgressBar() bool { return true }

type DeleteRecipeEvent struct {
	Recipe *models.Recipe
}

func (DeleteRecipeEvent) ErrorInfo() string              { return "Error deleting recipe." }
func (DeleteRecipeEvent) EventName() string              { return "DeleteRecipeEvent" }
func (DeleteRecipeEvent) ShouldDisplayProgressBar() bool { return true }

type DeleteMultipleRecipesEvent struct {
	Recipes []*models.Recipe
}

func (DeleteMultipleRecipesEvent) ErrorInfo() string              { return "Error deleting the selected recipes." }
func (DeleteMultipleRecipesEvent) EventName() string              { return "DeleteMultipleRecipesEvent" }
func (DeleteMultipleRecipesEvent) ShouldDisplayProgressBar() bool { return true }

type SearchRecipesEvent struct{}

func (SearchRecipesEvent) ErrorInfo() string              { return "Error getting list of recipes." }
func (SearchRecipesEvent) EventName() string              { return "SearchRecipesEvent" }
func (SearchRecipesEvent) ShouldDisplayProgressBar() bool { return true }

type GetNumRecipesInCacheEvent struct{}

func (GetNumRecipesInCacheEvent) ErrorInfo() string {
	return "Error getting the number of recipes from the cache."
}
func (GetNumRecipesInCacheEvent) EventName() string              { return "GetNumRecipesInCacheEvent" }
func (GetNumRecipesInCacheEvent) ShouldDisplayProgressBar() bool { return true }

type GetRecipeEvent struct {
	ID string
}

func (GetRecipeEvent) ErrorInfo() string              { return "Error retrieving recipe." }
func (GetRecipeEvent) EventName() string              { return "GetRecipeEvent" }
func (GetRecipeEvent) ShouldDisplayProgressBar() bool { return true }
