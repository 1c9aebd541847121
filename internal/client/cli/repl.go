package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. The real App
// satisfies it; tests provide a lightweight stub.
type execIface interface {
	List(ctx context.Context, args []string) error
	Count(ctx context.Context) error
	Show(ctx context.Context, args []string) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	DeleteMany(ctx context.Context, args []string) error
	Sync(ctx context.Context) error
	Status(ctx context.Context) error
	Image(ctx context.Context, args []string) error
	ImageURL(ctx context.Context, args []string) error
	Tombstones(ctx context.Context) error
	PurgeTombstones(ctx context.Context) error
}

const helpText = `Available commands:
  list [query|*] [order] [page]  list recipes; order is title, -title, updated_at or -updated_at
  count                          number of cached recipes
  show <id>                      show a recipe
  add                            add a recipe
  edit <id>                      edit a recipe
  delete <id>                    delete a recipe
  deletemany <id>...             delete several recipes
  image <id> <file>              upload an image for a recipe
  imageurl <id>                  print a download link for a recipe image
  sync                           synchronize with the server
  status                         connection and last sync status
  tombstones                     list deleted recipes known to the server
  purge-tombstones               forget deleted recipes on the server
  exit                           leave the program`

// runREPL reads commands from reader and dispatches them to a until EOF,
// "exit" or "quit". Command errors are reported by the handlers themselves
// and never stop the loop. Commands that prompt for more input read from the
// same reader, so the REPL must not buffer ahead of them.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("diary %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printlnFn(helpText)

		case "l", "list":
			_ = a.List(ctx, args)

		case "count":
			_ = a.Count(ctx)

		case "show":
			_ = a.Show(ctx, args)

		case "add":
			_ = a.Add(ctx)

		case "edit":
			_ = a.Edit(ctx, args)

		case "delete":
			_ = a.Delete(ctx, args)

		case "deletemany":
			_ = a.DeleteMany(ctx, args)

		case "image":
			_ = a.Image(ctx, args)

		case "imageurl":
			_ = a.ImageURL(ctx, args)

		case "sync":
			_ = a.Sync(ctx)

		case "status":
			_ = a.Status(ctx)

		case "tombstones":
			_ = a.Tombstones(ctx)

		case "purge-tombstones":
			_ = a.PurgeTombstones(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
