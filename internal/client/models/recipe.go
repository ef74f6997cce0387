// Package models defines the wire types exchanged with the recipe backend.
// Fields mirror the JSON the server emits; everything here is plain data.
package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Recipe is a single recipe as returned by /search, /recipe/{id} and the
// curated lists (/popular, /quick-meals, /featured, /favorites).
//
// Ingredients and Instructions arrive as free-text blobs; the render package
// recovers their structure by delimiter splitting.
type Recipe struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description,omitempty"`
	Category     string     `json:"category,omitempty"`
	Difficulty   string     `json:"difficulty,omitempty"`
	PrepTime     int        `json:"prep_time"`
	CookTime     int        `json:"cook_time"`
	AvgRating    float64    `json:"avg_rating"`
	ReviewCount  int        `json:"review_count"`
	ViewCount    int        `json:"view_count,omitempty"`
	Ingredients  string     `json:"ingredients,omitempty"`
	Instructions string     `json:"instructions,omitempty"`
	Nutrition    *Nutrition `json:"nutrition,omitempty"`
	Tags         []string   `json:"tags,omitempty"`
	ImageURL     string     `json:"image_url,omitempty"`
}

// TotalTime is prep plus cook time in minutes. Negative wire values are
// clamped to zero so a malformed record cannot yield a negative total.
func (r Recipe) TotalTime() int {
	prep, cook := r.PrepTime, r.CookTime
	if prep < 0 {
		prep = 0
	}
	if cook < 0 {
		cook = 0
	}
	return prep + cook
}

// Nutrition is the optional per-recipe nutrition record.
//
// The backend emits calories as a number but the macros as strings with a
// unit suffix ("12g"). Both forms are accepted per macro; the parsed values
// are plain grams.
type Nutrition struct {
	Calories float64 `json:"calories,omitempty"`
	Protein  float64 `json:"protein,omitempty"`
	Carbs    float64 `json:"carbs,omitempty"`
	Fat      float64 `json:"fat,omitempty"`
	Fiber    float64 `json:"fiber,omitempty"`
}

// grams is a float that also accepts the backend's "NNg" string form.
type grams float64

func (g *grams) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*g = grams(f)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "g"))
	if s == "" {
		*g = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*g = grams(f)
	return nil
}

func (n *Nutrition) UnmarshalJSON(data []byte) error {
	var raw struct {
		Calories float64 `json:"calories"`
		Protein  grams   `json:"protein"`
		Carbs    grams   `json:"carbs"`
		Fat      grams   `json:"fat"`
		Fiber    grams   `json:"fiber"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*n = Nutrition{
		Calories: raw.Calories,
		Protein:  float64(raw.Protein),
		Carbs:    float64(raw.Carbs),
		Fat:      float64(raw.Fat),
		Fiber:    float64(raw.Fiber),
	}
	return nil
}

// Category is a recipe category with an optional recipe count.
//
// The backend is inconsistent about the shape: /categories may return bare
// names ("Desserts") or objects ({"name":"Desserts","count":12}). Both are
// accepted; a bare name has Count 0.
type Category struct {
	Name  string `json:"name"`
	Count int    `json:"count,omitempty"`
}

func (c *Category) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		c.Name, c.Count = name, 0
		return nil
	}
	var obj struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	c.Name, c.Count = obj.Name, obj.Count
	return nil
}

// Tag is one entry of the /tags list: a tag name with its usage count.
// The same string-or-object leniency as Category applies. Per-recipe tags
// (Recipe.Tags) are bare strings and stay that way.
type Tag struct {
	Name  string `json:"name"`
	Count int    `json:"count,omitempty"`
}

func (t *Tag) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		t.Name, t.Count = name, 0
		return nil
	}
	var obj struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	t.Name, t.Count = obj.Name, obj.Count
	return nil
}

// Stats is the aggregate counters from /stats.
type Stats struct {
	TotalRecipes    int `json:"total_recipes"`
	TotalCategories int `json:"total_categories"`
}
