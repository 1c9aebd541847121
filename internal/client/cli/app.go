package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/recipediary/internal/client/client"
	"github.com/dmitrijs2005/recipediary/internal/client/config"
	"github.com/dmitrijs2005/recipediary/internal/client/localdb"
	"github.com/dmitrijs2005/recipediary/internal/client/models"
	"github.com/dmitrijs2005/recipediary/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/recipediary/internal/client/repositories/recipes"
	"github.com/dmitrijs2005/recipediary/internal/client/response"
	"github.com/dmitrijs2005/recipediary/internal/client/result"
	"github.com/dmitrijs2005/recipediary/internal/client/services"
	"github.com/dmitrijs2005/recipediary/internal/client/syncer"
	"github.com/dmitrijs2005/recipediary/internal/filex"
	"github.com/dmitrijs2005/recipediary/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// recipeService is the interactor surface used by the commands.
type recipeService interface {
	Insert(ctx context.Context, id, title, ingredients, steps, imageRef string, ev response.StateEvent) response.DataState[services.DetailViewState]
	Update(ctx context.Context, rec *models.Recipe, ev response.StateEvent) response.DataState[services.DetailViewState]
	Delete(ctx context.Context, rec *models.Recipe, ev response.StateEvent) response.DataState[services.DetailViewState]
	DeleteMultiple(ctx context.Context, recs []*models.Recipe, ev response.StateEvent) response.DataState[services.ListViewState]
	Search(ctx context.Context, query, order string, page int, ev response.StateEvent) response.DataState[services.ListViewState]
	Count(ctx context.Context, ev response.StateEvent) response.DataState[services.ListViewState]
	Get(ctx context.Context, id string, ev response.StateEvent) response.DataState[services.DetailViewState]
}

type App struct {
	config  *config.Config
	recipes recipeService
	remote  client.RemoteStore
	meta    metadata.Repository
	policy  result.Policy
	logger  logging.Logger

	// newSync builds a fresh one-shot sync manager.
	newSync func() *syncer.Manager

	reader *bufio.Reader
	out    io.Writer

	mu       sync.Mutex
	mode     Mode
	lastSync *syncer.Manager

	closers []func() error
}

// NewApp opens the local cache, creates the remote client and wires the
// interactors and the sync manager.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	if err := filex.EnsureParentDir(c.LogFile); err != nil {
		return nil, err
	}
	logger := logging.NewFileLogger(c.LogFile, logging.ParseLevel(c.LogLevel)).With("component", "client")

	if err := filex.EnsureParentDir(c.DatabasePath); err != nil {
		return nil, err
	}
	db, err := localdb.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	remote, err := client.NewGRPCClient(c.ServerEndpointAddr, c.UserID)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	cache := recipes.NewSQLiteRepository(db)
	policy := result.Policy{CacheTimeout: c.CacheTimeout, RemoteTimeout: c.NetworkTimeout, Logger: logger}

	a := newApp(c, cache, metadata.NewSQLiteRepository(db), remote, policy, logger)
	a.closers = append(a.closers, remote.Close, db.Close)
	return a, nil
}

func newApp(c *config.Config, cache recipes.Repository, meta metadata.Repository, remote client.RemoteStore, policy result.Policy, logger logging.Logger) *App {
	a := &App{
		config:  c,
		recipes: services.NewRecipeService(cache, remote, models.NewFactory(), policy, logger),
		remote:  remote,
		meta:    meta,
		policy:  policy,
		logger:  logger,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		mode:    ModeOffline,
	}
	a.newSync = func() *syncer.Manager {
		return syncer.NewManager(
			syncer.NewDeletionSync(cache, remote, policy, logger),
			syncer.NewReconciler(cache, remote, policy, logger, c.SyncConcurrency),
			logger,
		)
	}
	return a
}

// Close releases the remote connection and the local database.
func (a *App) Close() error {
	var first error
	for _, c := range a.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Root(ctx)
}

func (a *App) getMode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

// setMode switches the mode and reports whether it changed.
func (a *App) setMode(ctx context.Context, mode Mode) bool {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.logger.Info(ctx, "switched mode", "mode", mode)
	}
	return changed
}

// checkOnline pings the server once and updates the mode.
func (a *App) checkOnline(ctx context.Context) {
	r := result.FromRemote(ctx, a.policy, result.Do(a.remote.Ping))
	if r.OK() {
		a.setMode(ctx, ModeOnline)
		return
	}
	a.setMode(ctx, ModeOffline)
}

// StartOnlineStatusWatcher pings the server every interval until ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) getStatus() string {
	return fmt.Sprintf("(%s %s)", a.config.UserID, a.getMode())
}
