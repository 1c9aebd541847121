package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/recipediary/internal/dbx"
	"github.com/dmitrijs2005/recipediary/internal/server/repositories/recipes"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Recipes(db dbx.DBTX) recipes.Repository
	Tombstones(db dbx.DBTX) recipes.Repository
}
