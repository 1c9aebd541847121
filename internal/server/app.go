// Package server initializes and runs the recipe store server: it opens and
// migrates PostgreSQL, wires the services and serves gRPC until a shutdown
// signal arrives.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/recipediary/internal/logging"
	"github.com/dmitrijs2005/recipediary/internal/server/config"
	"github.com/dmitrijs2005/recipediary/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/recipediary/internal/server/services"
	"golang.org/x/sync/errgroup"

	gs "github.com/dmitrijs2005/recipediary/internal/server/grpc"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	recipes *services.RecipeService
	images  *services.ImageService
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(slog.LevelInfo)

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db migration error: %w", err)
	}

	return &App{
		config:  c,
		logger:  logger,
		db:      db,
		recipes: services.NewRecipeService(db, rm),
		images:  services.NewImageService(c),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves until ctx is cancelled or a shutdown signal arrives, then
// closes the database.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")
	app.initSignalHandler(cancelFunc)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.recipes, app.images)
		return s.Run(ctx)
	})

	err := g.Wait()
	if err != nil {
		app.logger.Error(ctx, err.Error())
	}
	if cerr := app.db.Close(); cerr != nil && err == nil {
		err = cerr
	}
	app.logger.Info(context.Background(), "App stopped")
	return err
}
