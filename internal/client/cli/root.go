package cli

import (
	"context"
	"fmt"
)

// Root runs the startup sequence and then the REPL on stdin until the user
// exits or ctx is cancelled.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Recipe diary (type 'help' for commands)")

	a.startup(ctx)

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	status := func() string {
		if !interactive() {
			return ""
		}
		return a.getStatus() + " "
	}
	runREPL(ctx, a, status, a.reader)
}

// startup checks connectivity and runs the startup sync, waiting for it to
// complete. A failed sync is reported but does not keep the user out: the
// cache is always usable.
func (a *App) startup(ctx context.Context) {
	a.checkOnline(ctx)
	fmt.Fprintf(a.out, "Server %s is %s.\n", a.config.ServerEndpointAddr, a.getMode())

	fmt.Fprintln(a.out, "Syncing...")
	s, err := a.runSync(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Sync interrupted:", err)
		return
	}
	printSummary(a.out, s)
}
