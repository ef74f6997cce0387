// Package filter holds the current search criteria and the client-side
// ordering of result lists. Narrowing (query, category, difficulty, max time)
// is the backend's job via query parameters; ordering happens here, after the
// response, with a stable sort so ties keep the server's order.
package filter

import (
	"net/url"
	"sort"
	"strconv"
	"strings"

	"recipefinder/internal/client/models"
)

// SortKey selects a comparator for the result list.
type SortKey string

const (
	SortName       SortKey = "name"
	SortTime       SortKey = "time"
	SortRating     SortKey = "rating"
	SortDifficulty SortKey = "difficulty"
)

// ParseSortKey maps user input to a SortKey, defaulting to name.
func ParseSortKey(s string) (SortKey, bool) {
	switch SortKey(strings.ToLower(strings.TrimSpace(s))) {
	case SortName:
		return SortName, true
	case SortTime:
		return SortTime, true
	case SortRating:
		return SortRating, true
	case SortDifficulty:
		return SortDifficulty, true
	}
	return SortName, false
}

// Criteria is the single mutable set of filter settings. Zero values mean
// "no constraint" and are omitted from the outgoing query.
type Criteria struct {
	Query      string
	Category   string
	Difficulty string
	MaxTime    int
	Sort       SortKey
}

// Reset returns criteria with everything cleared and the default sort.
func Reset() Criteria {
	return Criteria{Sort: SortName}
}

// Values encodes the non-empty narrowing fields as backend query parameters.
// The sort key is client-side only and never sent.
func (c Criteria) Values() url.Values {
	v := url.Values{}
	if c.Query != "" {
		v.Set("q", c.Query)
	}
	if c.Category != "" {
		v.Set("category", c.Category)
	}
	if c.Difficulty != "" {
		v.Set("difficulty", c.Difficulty)
	}
	if c.MaxTime > 0 {
		v.Set("max_time", strconv.Itoa(c.MaxTime))
	}
	return v
}

// SearchPath builds the /search request path for these criteria.
func (c Criteria) SearchPath() string {
	q := c.Values().Encode()
	if q == "" {
		return "/search"
	}
	return "/search?" + q
}

// difficultyRank orders Easy < Medium < Hard. Anything unrecognized gets
// rank 0 and therefore sorts before Easy; that quirk is relied upon by
// existing data and kept as is.
var difficultyRank = map[string]int{
	"Easy":   1,
	"Medium": 2,
	"Hard":   3,
}

// Sort returns a new slice ordered by the given key. The sort is stable, so
// equal elements keep their input order, and resorting an already sorted
// list is a no-op.
func Sort(recipes []models.Recipe, key SortKey) []models.Recipe {
	out := make([]models.Recipe, len(recipes))
	copy(out, recipes)

	switch key {
	case SortTime:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].TotalTime() < out[j].TotalTime()
		})
	case SortRating:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].AvgRating > out[j].AvgRating
		})
	case SortDifficulty:
		sort.SliceStable(out, func(i, j int) bool {
			return difficultyRank[out[i].Difficulty] < difficultyRank[out[j].Difficulty]
		})
	default: // SortName
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
		})
	}
	return out
}
