package cli

import (
	"context"
	"strconv"

	"recipefinder/internal/client/filter"
	"recipefinder/internal/client/models"
)

// Search sets the free-text query and refreshes the result list.
func (a *App) Search(ctx context.Context, query string) error {
	a.criteria.Query = query
	return a.refreshResults(ctx)
}

// ApplyFilters interactively collects category, difficulty and max total
// time, then refreshes the result list. Empty answers clear the
// corresponding constraint.
func (a *App) ApplyFilters(ctx context.Context) error {
	category, err := getSimpleText(a.reader, "Category (empty for any)", a.out)
	if err != nil {
		return err
	}
	difficulty, err := getSimpleText(a.reader, "Difficulty: Easy/Medium/Hard (empty for any)", a.out)
	if err != nil {
		return err
	}
	maxTimeText, err := getSimpleText(a.reader, "Max total minutes (empty for any)", a.out)
	if err != nil {
		return err
	}

	maxTime := 0
	if maxTimeText != "" {
		maxTime, err = strconv.Atoi(maxTimeText)
		if err != nil || maxTime < 0 {
			a.notifyError("Max time must be a non-negative number")
			return nil
		}
	}

	a.criteria.Category = category
	a.criteria.Difficulty = difficulty
	a.criteria.MaxTime = maxTime
	return a.refreshResults(ctx)
}

// SortBy changes the sort key and reorders the current result list without
// another backend round-trip.
func (a *App) SortBy(ctx context.Context, key string) error {
	sortKey, ok := filter.ParseSortKey(key)
	if !ok {
		a.notifyError("Unknown sort key, use name, time, rating or difficulty")
		return nil
	}
	a.criteria.Sort = sortKey
	a.results = filter.Sort(a.results, sortKey)
	a.printRecipeList(ctx, a.results)
	return nil
}

// ShowAll clears every filter and reloads the full recipe list.
func (a *App) ShowAll(ctx context.Context) error {
	a.criteria = filter.Reset()
	return a.refreshResults(ctx)
}

// refreshResults queries /search with the current criteria and installs the
// sorted response as the visible list. Responses are generation-guarded:
// if a newer request was issued while this one was in flight, this result
// is stale and dropped.
func (a *App) refreshResults(ctx context.Context) error {
	gen := a.gen.Add(1)

	var recipes []models.Recipe
	if err := a.client.GetJSON(ctx, a.criteria.SearchPath(), &recipes); err != nil {
		a.notifyError("Failed to load recipes")
		return err
	}

	if gen != a.gen.Load() {
		a.log.Debug(ctx, "discarding stale search response", "generation", gen)
		return nil
	}

	a.results = filter.Sort(recipes, a.criteria.Sort)
	a.printRecipeList(ctx, a.results)
	return nil
}
