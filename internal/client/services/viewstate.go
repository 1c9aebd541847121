package services

import "github.com/dmitrijs2005/recipediary/internal/client/models"

// ListViewState is the data produced by list-screen interactors.
type ListViewState struct {
	Recipes         []*models.Recipe
	Query           string
	Order           string
	Page            int
	NumRecipesCache int
}

// DetailViewState is the data produced by single-recipe interactors.
type DetailViewState struct {
	Recipe *models.Recipe
}
