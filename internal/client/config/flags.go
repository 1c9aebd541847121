package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/recipediary/internal/flagx"
)

// parseFlags overlays cfg with command-line flags:
//
//	-a string   address and port of the gRPC server
//	-u string   user id sent with every remote call
//	-d string   path of the local SQLite cache
//	-l string   log file path
//	-i int      online check interval in seconds
//	-s int      number of records reconciled in parallel during sync
//
// Only these flags are considered; the rest of os.Args is left to other
// layers.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-u", "-d", "-l", "-i", "-s"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	fs.StringVar(&cfg.UserID, "u", cfg.UserID, "user id")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "local database path")
	fs.StringVar(&cfg.LogFile, "l", cfg.LogFile, "log file path")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	fs.IntVar(&cfg.SyncConcurrency, "s", cfg.SyncConcurrency, "sync concurrency")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
}
