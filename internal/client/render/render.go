// Package render projects wire data into display structures. Everything here
// is a pure function of its input: no network access, no shared state. Absent
// fields render fixed defaults rather than propagating emptiness.
package render

import (
	"recipefinder/internal/client/models"
)

// Display defaults for absent fields.
const (
	DefaultCategory    = "Uncategorized"
	DefaultDifficulty  = "Medium"
	DefaultDescription = "A delicious recipe waiting to be tried!"
	PlaceholderImage   = "https://via.placeholder.com/300x200/4CAF50/white?text=No+Image"

	NoResults      = "No recipes found"
	NoIngredients  = "No ingredients listed."
	NoInstructions = "No instructions available."
)

// Card is the list/grid representation of a recipe.
type Card struct {
	ID          int64
	Title       string
	Description string
	Category    string
	Difficulty  string
	TotalTime   int
	Rating      float64
	Reviews     int
	Calories    float64
	HasCalories bool
	Image       string
}

// NewCard projects a recipe into its card form.
func NewCard(r models.Recipe) Card {
	c := Card{
		ID:          r.ID,
		Title:       r.Name,
		Description: r.Description,
		Category:    r.Category,
		Difficulty:  r.Difficulty,
		TotalTime:   r.TotalTime(),
		Rating:      r.AvgRating,
		Reviews:     r.ReviewCount,
		Image:       imageRef(r.ImageURL),
	}
	if c.Description == "" {
		c.Description = DefaultDescription
	}
	if c.Category == "" {
		c.Category = DefaultCategory
	}
	if c.Difficulty == "" {
		c.Difficulty = DefaultDifficulty
	}
	if r.Nutrition != nil {
		c.Calories = r.Nutrition.Calories
		c.HasCalories = true
	}
	return c
}

// Cards projects a recipe list. The second return value reports whether the
// list was empty, in which case callers show the NoResults placeholder.
func Cards(recipes []models.Recipe) ([]Card, bool) {
	if len(recipes) == 0 {
		return nil, true
	}
	out := make([]Card, len(recipes))
	for i, r := range recipes {
		out[i] = NewCard(r)
	}
	return out, false
}

// Detail is the full modal/detail representation of a recipe.
type Detail struct {
	ID          int64
	Name        string
	Category    string
	Difficulty  string
	Rating      float64
	Reviews     int
	PrepTime    int
	CookTime    int
	TotalTime   int
	Description string
	Ingredients []string
	Steps       []Step
	Nutrition   *models.Nutrition
	Tags        []string
	Image       string
}

// NewDetail projects a recipe into its detail form. Empty ingredient or
// instruction text yields an explicit placeholder entry, never an empty list.
func NewDetail(r models.Recipe) Detail {
	d := Detail{
		ID:          r.ID,
		Name:        r.Name,
		Category:    r.Category,
		Difficulty:  r.Difficulty,
		Rating:      r.AvgRating,
		Reviews:     r.ReviewCount,
		PrepTime:    r.PrepTime,
		CookTime:    r.CookTime,
		TotalTime:   r.TotalTime(),
		Description: r.Description,
		Ingredients: SplitIngredients(r.Ingredients),
		Steps:       SplitInstructions(r.Instructions),
		Nutrition:   r.Nutrition,
		Tags:        r.Tags,
		Image:       imageRef(r.ImageURL),
	}
	if d.Category == "" {
		d.Category = DefaultCategory
	}
	if d.Difficulty == "" {
		d.Difficulty = DefaultDifficulty
	}
	if len(d.Ingredients) == 0 {
		d.Ingredients = []string{NoIngredients}
	}
	if len(d.Steps) == 0 {
		d.Steps = []Step{{Number: 1, Text: NoInstructions}}
	}
	return d
}

// ProfilePanel is the display form of a user profile.
type ProfilePanel struct {
	Username  string
	Email     string
	Joined    string
	LastLogin string
}

// NewProfilePanel projects a user record for display.
func NewProfilePanel(u models.User) ProfilePanel {
	return ProfilePanel{
		Username:  u.Username,
		Email:     u.Email,
		Joined:    u.CreatedAt,
		LastLogin: u.LastLogin,
	}
}

func imageRef(imageURL string) string {
	if imageURL == "" {
		return PlaceholderImage
	}
	return "/images/" + imageURL
}
