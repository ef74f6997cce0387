// Package cli provides the interactive terminal client for the recipe
// backend.
//
// It wires configuration, the API client, session state, the catalog cache
// and the favorites controller into a REPL. Typical flow: rehydrate and
// verify a persisted auth session, load the initial catalog concurrently,
// start a background health watcher, and dispatch user commands.
//
// Key commands:
//   - search / filter / sort / all: narrow and order the recipe list
//   - show: full recipe detail with ingredients and numbered steps
//   - categories, tags, popular, quick, featured, stats: catalog views
//   - login / register / logout / profile / setname: account handling
//   - favorites / fav / rate: per-user actions (require login)
//   - export: write the current result list to an .xlsx workbook
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
