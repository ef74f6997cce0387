package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"recipefinder/internal/client/api"
	"recipefinder/internal/client/catalog"
	"recipefinder/internal/client/config"
	"recipefinder/internal/client/favorites"
	"recipefinder/internal/client/filter"
	"recipefinder/internal/client/models"
	"recipefinder/internal/client/session"
	"recipefinder/internal/logging"
)

// App owns all client-side state: the single catalog snapshot, the single
// auth session, the current filter criteria and the visible result list.
// Renderer and controller code receive what they need from here instead of
// reading ambient globals.
type App struct {
	config  *config.Config
	log     logging.Logger
	client  *api.Client
	session *session.Manager
	catalog *catalog.Cache
	favs    *favorites.Controller
	watcher *catalog.HealthWatcher

	criteria filter.Criteria
	results  []models.Recipe

	// gen guards against stale search responses: a response issued under an
	// older generation than the newest one is discarded instead of applied.
	gen atomic.Uint64

	reader *bufio.Reader
	out    io.Writer
}

// NewApp wires the client components together from the given configuration.
func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	client := api.New(cfg.ServerBaseURL, session.NewSessionID(), api.WithTimeout(cfg.RequestTimeout))

	store := session.NewStore(cfg.StateFile)
	mgr := session.NewManager(client, store)
	client.SetTokenSource(mgr)
	if err := mgr.Rehydrate(); err != nil {
		return nil, fmt.Errorf("load auth state: %w", err)
	}

	cache := catalog.NewCache(client, log)

	return &App{
		config:   cfg,
		log:      log,
		client:   client,
		session:  mgr,
		catalog:  cache,
		favs:     favorites.NewController(client, mgr),
		watcher:  catalog.NewHealthWatcher(cache),
		criteria: filter.Reset(),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

// status builds the prompt suffix: username when logged in, plus the backend
// reachability as seen by the health watcher.
func (a *App) status() string {
	s := ""
	if u := a.session.User(); u != nil {
		s = u.Username + " "
	}
	if a.watcher.Online() {
		s += "online"
	} else {
		s += "offline"
	}
	return "(" + s + ")"
}

// Run starts the client: verifies any persisted session, performs the initial
// concurrent load, starts the health watcher and enters the REPL. It blocks
// until the user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	if a.session.IsAuthenticated() {
		if err := a.session.Verify(ctx); err != nil {
			fmt.Fprintln(a.out, "Stored session is no longer valid, please log in again.")
		} else if u := a.session.User(); u != nil {
			fmt.Fprintf(a.out, "Welcome back, %s!\n", u.Username)
		}
	}

	a.loadInitialData(ctx)
	_ = a.Stats(ctx)

	watchCtx, stopWatcher := context.WithCancel(ctx)
	defer stopWatcher()
	go a.watcher.Run(watchCtx, a.config.HealthCheckInterval)

	fmt.Fprintln(a.out, "Welcome to the recipe finder (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner, a.out)
}

// loadInitialData performs the six-way concurrent catalog load and reports
// each section's outcome. A failing section shows an error placeholder while
// the rest render normally.
func (a *App) loadInitialData(ctx context.Context) {
	snap := a.catalog.Reload(ctx)

	if err := snap.Err(catalog.SectionRecipes); err != nil {
		a.notifyError("Failed to load recipes")
	} else {
		a.results = filter.Sort(snap.Recipes, a.criteria.Sort)
		fmt.Fprintf(a.out, "%s\n", resultsCount(len(a.results)))
	}
	if err := snap.Err(catalog.SectionCategories); err != nil {
		a.notifyError("Failed to load categories")
	}
	for _, sec := range []catalog.Section{
		catalog.SectionPopular, catalog.SectionQuickMeals,
		catalog.SectionTags, catalog.SectionFeatured,
	} {
		if err := snap.Err(sec); err != nil {
			fmt.Fprintf(a.out, "[%s] unavailable\n", sec)
		}
	}
}

// notifyError is the CLI equivalent of a transient error notification.
func (a *App) notifyError(message string) {
	fmt.Fprintf(a.out, "! %s\n", message)
}

func resultsCount(n int) string {
	if n == 1 {
		return "1 recipe found"
	}
	return fmt.Sprintf("%d recipes found", n)
}
