// Package catalog maintains the in-memory snapshot of backend data: the
// recipe list, curated lists, categories and tags. A snapshot is rebuilt
// wholesale on each reload; partial updates are never merged in.
package catalog

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"recipefinder/internal/client/api"
	"recipefinder/internal/client/models"
	"recipefinder/internal/logging"
)

// Section names one of the independently fetched data sources.
type Section string

const (
	SectionCategories Section = "categories"
	SectionRecipes    Section = "recipes"
	SectionPopular    Section = "popular"
	SectionQuickMeals Section = "quick-meals"
	SectionTags       Section = "tags"
	SectionFeatured   Section = "featured"
)

// Snapshot is the result of one reload. For a section that failed, Errs
// records the failure and the section keeps the data from the previous
// snapshot, so a transient error does not blank out the display.
type Snapshot struct {
	Recipes    []models.Recipe
	Categories []models.Category
	Tags       []models.Tag
	Popular    []models.Recipe
	QuickMeals []models.Recipe
	Featured   []models.Recipe

	Errs map[Section]error
}

// Err returns the recorded failure for a section, or nil.
func (s *Snapshot) Err(sec Section) error {
	if s == nil || s.Errs == nil {
		return nil
	}
	return s.Errs[sec]
}

// Cache fetches and holds catalog snapshots.
type Cache struct {
	client *api.Client
	log    logging.Logger

	mu   sync.RWMutex
	snap *Snapshot
}

// NewCache returns an empty Cache bound to the given API client.
func NewCache(client *api.Client, log logging.Logger) *Cache {
	return &Cache{client: client, log: log, snap: &Snapshot{}}
}

// Snapshot returns the most recent snapshot. Never nil.
func (c *Cache) Snapshot() *Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snap
}

// Reload fetches all six data sources concurrently and installs a new
// snapshot. Each fetch catches its own error, so one failing section never
// blocks the others; the group always settles. The returned snapshot is the
// one installed.
func (c *Cache) Reload(ctx context.Context) *Snapshot {
	prev := c.Snapshot()
	next := &Snapshot{
		Recipes:    prev.Recipes,
		Categories: prev.Categories,
		Tags:       prev.Tags,
		Popular:    prev.Popular,
		QuickMeals: prev.QuickMeals,
		Featured:   prev.Featured,
		Errs:       map[Section]error{},
	}

	var mu sync.Mutex
	fail := func(sec Section, err error) {
		mu.Lock()
		next.Errs[sec] = err
		mu.Unlock()
		c.log.Warn(ctx, "catalog section load failed", "section", string(sec), "error", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var cats []models.Category
		if err := c.client.GetJSON(gctx, "/categories", &cats); err != nil {
			fail(SectionCategories, err)
			return nil
		}
		next.Categories = cats
		return nil
	})
	g.Go(func() error {
		var recipes []models.Recipe
		if err := c.client.GetJSON(gctx, "/search", &recipes); err != nil {
			fail(SectionRecipes, err)
			return nil
		}
		next.Recipes = recipes
		return nil
	})
	g.Go(func() error {
		var recipes []models.Recipe
		if err := c.client.GetJSON(gctx, "/popular", &recipes); err != nil {
			fail(SectionPopular, err)
			return nil
		}
		next.Popular = recipes
		return nil
	})
	g.Go(func() error {
		var recipes []models.Recipe
		if err := c.client.GetJSON(gctx, "/quick-meals", &recipes); err != nil {
			fail(SectionQuickMeals, err)
			return nil
		}
		next.QuickMeals = recipes
		return nil
	})
	g.Go(func() error {
		var tags []models.Tag
		if err := c.client.GetJSON(gctx, "/tags", &tags); err != nil {
			fail(SectionTags, err)
			return nil
		}
		next.Tags = tags
		return nil
	})
	g.Go(func() error {
		var recipes []models.Recipe
		if err := c.client.GetJSON(gctx, "/featured", &recipes); err != nil {
			fail(SectionFeatured, err)
			return nil
		}
		next.Featured = recipes
		return nil
	})
	_ = g.Wait() // members never return errors; Wait only joins them

	c.mu.Lock()
	c.snap = next
	c.mu.Unlock()
	return next
}

func recipePath(id int64) string {
	return fmt.Sprintf("/recipe/%d", id)
}

// Recipe fetches one recipe's full detail by id.
func (c *Cache) Recipe(ctx context.Context, id int64) (*models.Recipe, error) {
	var r models.Recipe
	if err := c.client.GetJSON(ctx, recipePath(id), &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// Stats fetches the aggregate counters.
func (c *Cache) Stats(ctx context.Context) (*models.Stats, error) {
	var s models.Stats
	if err := c.client.GetJSON(ctx, "/stats", &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Health probes the backend's health endpoint.
func (c *Cache) Health(ctx context.Context) error {
	var resp struct {
		Status string `json:"status"`
	}
	return c.client.GetJSON(ctx, "/health", &resp)
}
