package favorites

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"recipefinder/internal/client/api"
	"recipefinder/internal/client/session"
)

type authStub bool

func (a authStub) IsAuthenticated() bool { return bool(a) }

func countingServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *int) {
	t.Helper()
	calls := new(int)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*calls++
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return srv, calls
}

func TestToggleUnauthenticatedNoNetwork(t *testing.T) {
	srv, calls := countingServer(t, func(w http.ResponseWriter, r *http.Request) {})
	c := NewController(api.New(srv.URL, "s1"), authStub(false))

	state, err := c.Toggle(context.Background(), 1, false)
	require.ErrorIs(t, err, session.ErrNotAuthenticated)
	require.False(t, state)
	require.Zero(t, *calls)
}

func TestToggleAddsAndRemoves(t *testing.T) {
	var gotMethod, gotPath string
	srv, _ := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		w.Write([]byte(`{"message":"ok"}`))
	})
	c := NewController(api.New(srv.URL, "s1"), authStub(true))

	state, err := c.Toggle(context.Background(), 42, false)
	require.NoError(t, err)
	require.True(t, state)
	require.Equal(t, http.MethodPost, gotMethod)
	require.Equal(t, "/favorites/42", gotPath)

	state, err = c.Toggle(context.Background(), 42, true)
	require.NoError(t, err)
	require.False(t, state)
	require.Equal(t, http.MethodDelete, gotMethod)
	require.Equal(t, "/favorites/42", gotPath)
}

func TestToggleBackendErrorKeepsState(t *testing.T) {
	srv, _ := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"Recipe not found"}`))
	})
	c := NewController(api.New(srv.URL, "s1"), authStub(true))

	state, err := c.Toggle(context.Background(), 9, false)
	require.Error(t, err)
	require.False(t, state)
}

func TestStatusUnauthenticatedIsFalse(t *testing.T) {
	srv, calls := countingServer(t, func(w http.ResponseWriter, r *http.Request) {})
	c := NewController(api.New(srv.URL, "s1"), authStub(false))

	require.False(t, c.Status(context.Background(), 1))
	require.Zero(t, *calls)
}

func TestStatusFailureIsFalseNotError(t *testing.T) {
	srv, _ := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	c := NewController(api.New(srv.URL, "s1", api.WithRetries(0)), authStub(true))
	require.False(t, c.Status(context.Background(), 1))
}

func TestStatusFavorited(t *testing.T) {
	srv, _ := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/favorites/check/7", r.URL.Path)
		w.Write([]byte(`{"is_favorited":true}`))
	})
	c := NewController(api.New(srv.URL, "s1"), authStub(true))
	require.True(t, c.Status(context.Background(), 7))
}

func TestRateValidatesLocally(t *testing.T) {
	srv, calls := countingServer(t, func(w http.ResponseWriter, r *http.Request) {})
	c := NewController(api.New(srv.URL, "s1"), authStub(true))

	for _, bad := range []int{0, -1, 6} {
		require.ErrorIs(t, c.Rate(context.Background(), 1, bad), ErrInvalidRating)
	}
	require.Zero(t, *calls)
}

func TestRateUnauthenticatedNoNetwork(t *testing.T) {
	srv, calls := countingServer(t, func(w http.ResponseWriter, r *http.Request) {})
	c := NewController(api.New(srv.URL, "s1"), authStub(false))

	require.ErrorIs(t, c.Rate(context.Background(), 1, 4), session.ErrNotAuthenticated)
	require.Zero(t, *calls)
}

func TestRateSubmits(t *testing.T) {
	var gotPath string
	srv, _ := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.Equal(t, http.MethodPost, r.Method)
		w.Write([]byte(`{"message":"Rating submitted"}`))
	})
	c := NewController(api.New(srv.URL, "s1"), authStub(true))

	require.NoError(t, c.Rate(context.Background(), 5, 4))
	require.Equal(t, "/recipe/5/rate", gotPath)
}

func TestListRequiresAuth(t *testing.T) {
	srv, calls := countingServer(t, func(w http.ResponseWriter, r *http.Request) {})
	c := NewController(api.New(srv.URL, "s1"), authStub(false))

	_, err := c.List(context.Background())
	require.ErrorIs(t, err, session.ErrNotAuthenticated)
	require.Zero(t, *calls)
}

func TestList(t *testing.T) {
	srv, _ := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/favorites", r.URL.Path)
		w.Write([]byte(`[{"id":1,"name":"Pancakes"}]`))
	})
	c := NewController(api.New(srv.URL, "s1"), authStub(true))

	got, err := c.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Pancakes", got[0].Name)
}
