package catalog

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"recipefinder/internal/client/api"
	"recipefinder/internal/client/models"
	"recipefinder/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})))
}

// backend is a minimal fake of the recipe API; set failCategories to break
// the /categories endpoint only.
func backend(failCategories bool) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/categories", func(w http.ResponseWriter, r *http.Request) {
		if failCategories {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":"Database connection failed"}`))
			return
		}
		w.Write([]byte(`["Breakfast",{"name":"Dinner","count":3}]`))
	})
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":1,"name":"Pancakes","prep_time":10,"cook_time":15,
			"nutrition":{"calories":350,"protein":"9g","carbs":"45g","fat":"12g","fiber":"2g"}}]`))
	})
	mux.HandleFunc("/popular", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":2,"name":"Tacos"}]`))
	})
	mux.HandleFunc("/quick-meals", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":3,"name":"Omelette"}]`))
	})
	mux.HandleFunc("/tags", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"name":"vegan","count":4},{"name":"spicy","count":2}]`))
	})
	mux.HandleFunc("/featured", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":4,"name":"Ramen"}]`))
	})
	mux.HandleFunc("/stats", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"total_recipes":42,"total_categories":5}`))
	})
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"healthy"}`))
	})
	mux.HandleFunc("/recipe/1", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":1,"name":"Pancakes","ingredients":"flour, milk, eggs"}`))
	})
	return mux
}

func newCache(t *testing.T, h http.Handler) (*Cache, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewCache(api.New(srv.URL, "s1", api.WithRetries(0)), testLogger()), srv
}

func TestReloadPopulatesAllSections(t *testing.T) {
	c, _ := newCache(t, backend(false))
	snap := c.Reload(context.Background())

	require.Empty(t, snap.Errs)
	require.Len(t, snap.Recipes, 1)
	require.NotNil(t, snap.Recipes[0].Nutrition)
	require.Equal(t, 9.0, snap.Recipes[0].Nutrition.Protein)
	require.Equal(t, []models.Category{{Name: "Breakfast"}, {Name: "Dinner", Count: 3}}, snap.Categories)
	require.Equal(t, []models.Tag{{Name: "vegan", Count: 4}, {Name: "spicy", Count: 2}}, snap.Tags)
	require.Len(t, snap.Popular, 1)
	require.Len(t, snap.QuickMeals, 1)
	require.Len(t, snap.Featured, 1)
	require.Same(t, snap, c.Snapshot())
}

func TestReloadOneSectionFailsOthersPopulate(t *testing.T) {
	c, _ := newCache(t, backend(true))
	snap := c.Reload(context.Background())

	require.Error(t, snap.Err(SectionCategories))
	require.NoError(t, snap.Err(SectionRecipes))
	require.Len(t, snap.Recipes, 1)
	require.Equal(t, []models.Tag{{Name: "vegan", Count: 4}, {Name: "spicy", Count: 2}}, snap.Tags)
}

func TestReloadFailureKeepsPreviousSectionData(t *testing.T) {
	fail := false
	mux := http.NewServeMux()
	mux.Handle("/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		backend(false).ServeHTTP(w, r)
	}))
	c, _ := newCache(t, mux)

	first := c.Reload(context.Background())
	require.Empty(t, first.Errs)

	fail = true
	second := c.Reload(context.Background())

	// Every section failed, but the previous snapshot's data is retained.
	require.Len(t, second.Errs, 6)
	require.Equal(t, first.Recipes, second.Recipes)
	require.Equal(t, first.Categories, second.Categories)
	require.Equal(t, first.Tags, second.Tags)
}

func TestRecipeDetail(t *testing.T) {
	c, _ := newCache(t, backend(false))
	r, err := c.Recipe(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "Pancakes", r.Name)
	require.Equal(t, "flour, milk, eggs", r.Ingredients)
}

func TestStats(t *testing.T) {
	c, _ := newCache(t, backend(false))
	s, err := c.Stats(context.Background())
	require.NoError(t, err)
	require.Equal(t, 42, s.TotalRecipes)
	require.Equal(t, 5, s.TotalCategories)
}

func TestHealthWatcherFlipsOffline(t *testing.T) {
	c, srv := newCache(t, backend(false))
	w := NewHealthWatcher(c)
	require.True(t, w.Online())

	w.probe(context.Background())
	require.True(t, w.Online())

	srv.Close()
	w.probe(context.Background())
	require.False(t, w.Online())
}
