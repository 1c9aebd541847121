package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/recipediary/internal/client/models"
	"github.com/dmitrijs2005/recipediary/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/recipediary/internal/client/result"
	"github.com/dmitrijs2005/recipediary/internal/client/syncer"
)

// runSync executes a fresh sync manager and waits for it.
func (a *App) runSync(ctx context.Context) (syncer.Summary, error) {
	m := a.newSync()
	a.mu.Lock()
	a.lastSync = m
	a.mu.Unlock()

	m.Execute(ctx)
	if err := m.Wait(ctx); err != nil {
		return syncer.Summary{}, err
	}

	s := m.Summary()
	last := metadata.LastSync{At: s.FinishedAt, OK: s.DeletionErr == nil && s.ReconcileErr == nil}
	if err := metadata.SaveLastSync(ctx, a.meta, last); err != nil {
		a.logger.Warn(ctx, "failed to record sync", "error", err)
	}
	return s, nil
}

func (a *App) Sync(ctx context.Context) error {
	fmt.Fprintln(a.out, "Syncing...")
	s, err := a.runSync(ctx)
	if err != nil {
		return err
	}
	printSummary(a.out, s)
	return errors.Join(s.DeletionErr, s.ReconcileErr)
}

func (a *App) Status(ctx context.Context) error {
	a.checkOnline(ctx)
	fmt.Fprintf(a.out, "Server:  %s (%s)\n", a.config.ServerEndpointAddr, a.getMode())
	fmt.Fprintf(a.out, "User:    %s\n", a.config.UserID)

	a.mu.Lock()
	m := a.lastSync
	a.mu.Unlock()

	if m == nil {
		a.printLastSync(ctx)
		return nil
	}
	fmt.Fprintf(a.out, "Sync:    %s\n", m.State())
	if m.HasSyncBeenExecuted() {
		printSummary(a.out, m.Summary())
	}
	return nil
}

func (a *App) Tombstones(ctx context.Context) error {
	r := result.FromRemote(ctx, a.policy, a.remote.GetAllTombstones)
	if !r.OK() {
		fmt.Fprintln(a.out, "Error:", r.Message())
		return r.Err()
	}
	if len(r.Value()) == 0 {
		fmt.Fprintln(a.out, "No deleted recipes.")
		return nil
	}
	renderRecipes(a.out, r.Value())
	return nil
}

// PurgeTombstones removes every tombstone from the server. Devices that have
// not synced since the deletions will publish those recipes again.
func (a *App) PurgeTombstones(ctx context.Context) error {
	r := result.FromRemote(ctx, a.policy, a.remote.GetAllTombstones)
	if !r.OK() {
		fmt.Fprintln(a.out, "Error:", r.Message())
		return r.Err()
	}

	var purged int
	var errs []error
	for _, t := range r.Value() {
		del := result.FromRemote(ctx, a.policy, result.Do(func(ctx context.Context) error {
			return a.remote.DeleteTombstone(ctx, t.ID)
		}))
		if !del.OK() {
			errs = append(errs, fmt.Errorf("%s: %s", t.ID, del.Message()))
			continue
		}
		purged++
	}

	fmt.Fprintf(a.out, "Purged %d of %d tombstones.\n", purged, len(r.Value()))
	return errors.Join(errs...)
}

// printLastSync reports a sync recorded by an earlier session.
func (a *App) printLastSync(ctx context.Context) {
	last, err := metadata.LoadLastSync(ctx, a.meta)
	if err != nil {
		a.logger.Warn(ctx, "failed to load last sync", "error", err)
	}
	if last == nil {
		fmt.Fprintln(a.out, "Sync:    never run")
		return
	}
	outcome := "completed"
	if !last.OK {
		outcome = "completed with errors"
	}
	fmt.Fprintf(a.out, "Sync:    not run this session, last %s at %s\n", outcome, models.FormatTimestamp(last.At))
}

func printSummary(w io.Writer, s syncer.Summary) {
	if s.DeletionErr != nil {
		fmt.Fprintln(w, "  deletions failed:", s.DeletionErr)
	} else {
		fmt.Fprintf(w, "  deletions: %d tombstones, %d removed locally\n", s.Deletion.Tombstones, s.Deletion.Deleted)
	}
	if s.ReconcileErr != nil {
		fmt.Fprintln(w, "  reconciliation failed:", s.ReconcileErr)
	} else {
		r := s.Reconcile
		fmt.Fprintf(w, "  recipes: %d pulled, %d updated, %d pushed, %d published, %d failed\n",
			r.Pulled, r.UpdatedLocally, r.Pushed, r.Published, r.Failed)
	}
	if !s.FinishedAt.IsZero() {
		fmt.Fprintf(w, "  finished at %s\n", models.FormatTimestamp(s.FinishedAt.UTC()))
	}
}
