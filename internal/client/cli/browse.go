package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"recipefinder/internal/client/catalog"
	"recipefinder/internal/client/models"
	"recipefinder/internal/client/render"
)

// Show fetches one recipe's full detail and prints it.
func (a *App) Show(ctx context.Context, id string) error {
	recipeID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		a.notifyError("Recipe id must be a number")
		return nil
	}

	recipe, err := a.catalog.Recipe(ctx, recipeID)
	if err != nil {
		a.notifyError("Failed to load recipe details")
		return err
	}

	a.printDetail(ctx, *recipe)
	return nil
}

// Categories prints the cached category list, reloading the catalog if the
// cache is still empty (mirrors the lazy tab load of the original UI).
func (a *App) Categories(ctx context.Context) error {
	snap := a.catalog.Snapshot()
	if len(snap.Categories) == 0 {
		snap = a.catalog.Reload(ctx)
	}
	if err := snap.Err(catalog.SectionCategories); err != nil {
		a.notifyError("Failed to load categories")
		return err
	}
	if len(snap.Categories) == 0 {
		fmt.Fprintln(a.out, "No categories available")
		return nil
	}
	for _, c := range snap.Categories {
		if c.Count > 0 {
			fmt.Fprintf(a.out, "  %s (%d recipes)\n", c.Name, c.Count)
		} else {
			fmt.Fprintf(a.out, "  %s\n", c.Name)
		}
	}
	return nil
}

// Tags prints the cached tag list with usage counts.
func (a *App) Tags(ctx context.Context) error {
	snap := a.catalog.Snapshot()
	if len(snap.Tags) == 0 {
		fmt.Fprintln(a.out, "No tags available")
		return nil
	}
	parts := make([]string, len(snap.Tags))
	for i, t := range snap.Tags {
		if t.Count > 0 {
			parts[i] = fmt.Sprintf("%s (%d)", t.Name, t.Count)
		} else {
			parts[i] = t.Name
		}
	}
	fmt.Fprintln(a.out, strings.Join(parts, ", "))
	return nil
}

// Popular prints the cached popular list.
func (a *App) Popular(ctx context.Context) error {
	return a.printSection(ctx, catalog.SectionPopular, a.catalog.Snapshot().Popular, "Failed to load popular recipes")
}

// QuickMeals prints the cached quick-meals list.
func (a *App) QuickMeals(ctx context.Context) error {
	return a.printSection(ctx, catalog.SectionQuickMeals, a.catalog.Snapshot().QuickMeals, "Failed to load quick meals")
}

// Featured prints the cached featured list.
func (a *App) Featured(ctx context.Context) error {
	return a.printSection(ctx, catalog.SectionFeatured, a.catalog.Snapshot().Featured, "Failed to load featured recipes")
}

func (a *App) printSection(ctx context.Context, section catalog.Section, recipes []models.Recipe, failureMsg string) error {
	if err := a.catalog.Snapshot().Err(section); err != nil {
		a.notifyError(failureMsg)
		return err
	}
	a.printRecipeList(ctx, recipes)
	return nil
}

// Stats fetches and prints the backend's aggregate counters, doubling as a
// reachability indicator.
func (a *App) Stats(ctx context.Context) error {
	stats, err := a.catalog.Stats(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "API offline")
		return err
	}
	fmt.Fprintf(a.out, "%d recipes in %d categories. API online.\n",
		stats.TotalRecipes, stats.TotalCategories)
	return nil
}

// printRecipeList renders the cards for a recipe list. Favorited status is
// re-queried per card on every render rather than cached; for an
// unauthenticated session the check short-circuits locally.
func (a *App) printRecipeList(ctx context.Context, recipes []models.Recipe) {
	cards, empty := render.Cards(recipes)
	if empty {
		fmt.Fprintln(a.out, render.NoResults)
		return
	}

	for _, c := range cards {
		marker := " "
		if a.favs.Status(ctx, c.ID) {
			marker = "*"
		}
		fmt.Fprintf(a.out, "%s [%d] %s | %s, %s, %d min, %.1f (%d)\n",
			marker, c.ID, c.Title, c.Category, c.Difficulty, c.TotalTime, c.Rating, c.Reviews)
	}
	fmt.Fprintln(a.out, resultsCount(len(cards)))
}

// printDetail renders a full recipe view.
func (a *App) printDetail(ctx context.Context, recipe models.Recipe) {
	d := render.NewDetail(recipe)

	fmt.Fprintf(a.out, "\n%s\n", d.Name)
	fmt.Fprintf(a.out, "%s | %s | %.1f (%d reviews)\n", d.Category, d.Difficulty, d.Rating, d.Reviews)
	fmt.Fprintf(a.out, "Prep %d min, cook %d min, total %d min\n", d.PrepTime, d.CookTime, d.TotalTime)
	if d.Description != "" {
		fmt.Fprintf(a.out, "\n%s\n", d.Description)
	}

	fmt.Fprintln(a.out, "\nIngredients:")
	for _, item := range d.Ingredients {
		fmt.Fprintf(a.out, "  - %s\n", item)
	}

	fmt.Fprintln(a.out, "\nInstructions:")
	for _, step := range d.Steps {
		fmt.Fprintf(a.out, "  %d. %s\n", step.Number, step.Text)
	}

	if d.Nutrition != nil {
		n := d.Nutrition
		fmt.Fprintf(a.out, "\nNutrition: %.0f cal, %.0fg protein, %.0fg carbs, %.0fg fat",
			n.Calories, n.Protein, n.Carbs, n.Fat)
		if n.Fiber > 0 {
			fmt.Fprintf(a.out, ", %.0fg fiber", n.Fiber)
		}
		fmt.Fprintln(a.out)
	}

	if len(d.Tags) > 0 {
		fmt.Fprintf(a.out, "\nTags: %s\n", strings.Join(d.Tags, ", "))
	}

	if a.favs.Status(ctx, d.ID) {
		fmt.Fprintln(a.out, "\n* In your favorites")
	}
}
