package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// executor defines the command surface the REPL dispatches to. The real App
// satisfies it; tests provide a lightweight stub.
type executor interface {
	isLoggedIn() bool
	Search(ctx context.Context, query string) error
	ApplyFilters(ctx context.Context) error
	SortBy(ctx context.Context, key string) error
	ShowAll(ctx context.Context) error
	Show(ctx context.Context, id string) error
	Categories(ctx context.Context) error
	Tags(ctx context.Context) error
	Popular(ctx context.Context) error
	QuickMeals(ctx context.Context) error
	Featured(ctx context.Context) error
	Stats(ctx context.Context) error
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) error
	SetUsername(ctx context.Context, name string) error
	Favorites(ctx context.Context) error
	ToggleFavorite(ctx context.Context, id string) error
	Rate(ctx context.Context, id, stars string) error
	Export(ctx context.Context, path string) error
}

// runREPL reads a line, parses the first token as the command and dispatches
// to methods on a. Unknown commands are reported back. The loop exits on
// scanner EOF or when the user types "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers report
// their own failures. That keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a executor, statusFn func() string, scanner *bufio.Scanner, out io.Writer) {
	for {
		fmt.Fprintf(out, "recipes %s> ", statusFn())
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printHelp(out, a.isLoggedIn())

		case "s", "search":
			_ = a.Search(ctx, strings.Join(args, " "))

		case "filter":
			_ = a.ApplyFilters(ctx)

		case "sort":
			if len(args) == 0 {
				fmt.Fprintln(out, "Usage: sort name|time|rating|difficulty")
				continue
			}
			_ = a.SortBy(ctx, args[0])

		case "all":
			_ = a.ShowAll(ctx)

		case "show":
			if len(args) == 0 {
				fmt.Fprintln(out, "Usage: show <id>")
				continue
			}
			_ = a.Show(ctx, args[0])

		case "categories":
			_ = a.Categories(ctx)

		case "tags":
			_ = a.Tags(ctx)

		case "popular":
			_ = a.Popular(ctx)

		case "quick":
			_ = a.QuickMeals(ctx)

		case "featured":
			_ = a.Featured(ctx)

		case "stats":
			_ = a.Stats(ctx)

		case "login":
			_ = a.Login(ctx)

		case "register":
			_ = a.Register(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "setname":
			if len(args) == 0 {
				fmt.Fprintln(out, "Usage: setname <username>")
				continue
			}
			_ = a.SetUsername(ctx, args[0])

		case "favorites":
			_ = a.Favorites(ctx)

		case "fav":
			if len(args) == 0 {
				fmt.Fprintln(out, "Usage: fav <id>")
				continue
			}
			_ = a.ToggleFavorite(ctx, args[0])

		case "rate":
			if len(args) < 2 {
				fmt.Fprintln(out, "Usage: rate <id> <1-5>")
				continue
			}
			_ = a.Rate(ctx, args[0], args[1])

		case "export":
			if len(args) == 0 {
				fmt.Fprintln(out, "Usage: export <file.xlsx>")
				continue
			}
			_ = a.Export(ctx, args[0])

		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return

		default:
			fmt.Fprintln(out, "Unknown command:", cmd)
		}
	}
}

func printHelp(out io.Writer, loggedIn bool) {
	fmt.Fprintln(out, "Browse:  (s)earch <text>, filter, sort <key>, all, show <id>")
	fmt.Fprintln(out, "Catalog: categories, tags, popular, quick, featured, stats")
	if loggedIn {
		fmt.Fprintln(out, "Account: profile, setname <username>, logout")
		fmt.Fprintln(out, "Actions: favorites, fav <id>, rate <id> <1-5>, export <file>")
	} else {
		fmt.Fprintln(out, "Account: login, register")
		fmt.Fprintln(out, "Actions: export <file>")
	}
	fmt.Fprintln(out, "Other:   help, exit")
}
