// Package favorites toggles per-user favorite membership and submits star
// ratings. All mutating operations require an auth session and are rejected
// locally, before any request is sent, when there is none.
package favorites

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"recipefinder/internal/client/api"
	"recipefinder/internal/client/models"
	"recipefinder/internal/client/session"
)

// ErrInvalidRating rejects ratings outside 1..5 before anything is sent.
var ErrInvalidRating = errors.New("rating must be between 1 and 5")

// AuthState is the slice of the session manager the controller needs.
type AuthState interface {
	IsAuthenticated() bool
}

// Controller shares the API client and auth state with the rest of the app.
type Controller struct {
	client *api.Client
	auth   AuthState
}

// NewController returns a Controller bound to the given client and auth state.
func NewController(client *api.Client, auth AuthState) *Controller {
	return &Controller{client: client, auth: auth}
}

// Toggle flips the favorited flag for a recipe and returns the new state.
// When unauthenticated it returns the unchanged state and
// session.ErrNotAuthenticated without any network round-trip.
func (c *Controller) Toggle(ctx context.Context, recipeID int64, favorited bool) (bool, error) {
	if !c.auth.IsAuthenticated() {
		return favorited, session.ErrNotAuthenticated
	}
	path := fmt.Sprintf("/favorites/%d", recipeID)
	if favorited {
		if err := c.client.Delete(ctx, path); err != nil {
			return favorited, err
		}
	} else {
		if err := c.client.PostJSON(ctx, path, nil, nil); err != nil {
			return favorited, err
		}
	}
	return !favorited, nil
}

// Status reports whether a recipe is favorited. Favorited status is
// best-effort: when unauthenticated, or when the check fails for any reason,
// it reports false rather than an error.
func (c *Controller) Status(ctx context.Context, recipeID int64) bool {
	if !c.auth.IsAuthenticated() {
		return false
	}
	var resp struct {
		IsFavorited bool `json:"is_favorited"`
	}
	if err := c.client.GetJSON(ctx, fmt.Sprintf("/favorites/check/%d", recipeID), &resp); err != nil {
		return false
	}
	return resp.IsFavorited
}

// List fetches the user's favorite recipes.
func (c *Controller) List(ctx context.Context) ([]models.Recipe, error) {
	if !c.auth.IsAuthenticated() {
		return nil, session.ErrNotAuthenticated
	}
	var recipes []models.Recipe
	if err := c.client.GetJSON(ctx, "/favorites", &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

// Rate submits a 1-5 star rating for a recipe. The rating is validated
// locally; an unselected (zero) rating never reaches the backend.
func (c *Controller) Rate(ctx context.Context, recipeID int64, rating int) error {
	if rating < 1 || rating > 5 {
		return ErrInvalidRating
	}
	if !c.auth.IsAuthenticated() {
		return session.ErrNotAuthenticated
	}
	_, err := c.client.Request(ctx, http.MethodPost, fmt.Sprintf("/recipe/%d/rate", recipeID),
		map[string]int{"rating": rating}, nil)
	return err
}
