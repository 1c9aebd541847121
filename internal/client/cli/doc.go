// Package cli provides the interactive recipe diary client.
//
// It wires configuration, the local SQLite cache, the remote store client
// and the interactors into a line-oriented REPL. On start the client pings
// the server, runs the startup sync and waits for it to finish before
// showing the prompt. A background watcher keeps the online/offline mode
// current.
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See runREPL for the command list.
package cli
