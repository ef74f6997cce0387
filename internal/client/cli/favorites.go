package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"recipefinder/internal/client/favorites"
	"recipefinder/internal/client/session"
)

// Favorites lists the user's favorite recipes.
func (a *App) Favorites(ctx context.Context) error {
	recipes, err := a.favs.List(ctx)
	if err != nil {
		if errors.Is(err, session.ErrNotAuthenticated) {
			a.notifyError("Please log in to see your favorites")
			return nil
		}
		a.notifyError("Failed to load favorites")
		return err
	}
	a.printRecipeList(ctx, recipes)
	return nil
}

// ToggleFavorite flips a recipe's favorited state. The current state is
// re-queried first, so the toggle is correct even if another device changed
// it since the last render.
func (a *App) ToggleFavorite(ctx context.Context, id string) error {
	recipeID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		a.notifyError("Recipe id must be a number")
		return nil
	}

	current := a.favs.Status(ctx, recipeID)
	next, err := a.favs.Toggle(ctx, recipeID, current)
	if err != nil {
		if errors.Is(err, session.ErrNotAuthenticated) {
			a.notifyError("Please log in to manage favorites")
			return nil
		}
		a.notifyError("Failed to update favorites")
		return err
	}

	if next {
		fmt.Fprintln(a.out, "Added to favorites.")
	} else {
		fmt.Fprintln(a.out, "Removed from favorites.")
	}
	return nil
}

// Rate submits a star rating for a recipe.
func (a *App) Rate(ctx context.Context, id, stars string) error {
	recipeID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		a.notifyError("Recipe id must be a number")
		return nil
	}
	rating, err := strconv.Atoi(stars)
	if err != nil {
		a.notifyError("Rating must be a number between 1 and 5")
		return nil
	}

	if err := a.favs.Rate(ctx, recipeID, rating); err != nil {
		switch {
		case errors.Is(err, favorites.ErrInvalidRating):
			a.notifyError("Please select a rating between 1 and 5")
			return nil
		case errors.Is(err, session.ErrNotAuthenticated):
			a.notifyError("Please log in to rate recipes")
			return nil
		}
		a.notifyError("Failed to submit rating")
		return err
	}

	fmt.Fprintln(a.out, "Thank you for your rating!")
	return nil
}
