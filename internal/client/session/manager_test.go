package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"recipefinder/internal/client/api"
)

func newManager(t *testing.T, backendURL string) (*Manager, *Store) {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "state.json"))
	client := api.New(backendURL, NewSessionID(), api.WithRetries(0))
	m := NewManager(client, store)
	client.SetTokenSource(m)
	return m, store
}

func TestNewSessionIDFormat(t *testing.T) {
	re := regexp.MustCompile(`^session_[0-9a-f]{12}[0-9a-z]+$`)
	a, b := NewSessionID(), NewSessionID()
	require.Regexp(t, re, a)
	require.Regexp(t, re, b)
	require.NotEqual(t, a, b)
}

func TestLoginStoresSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/login", r.URL.Path)
		w.Write([]byte(`{"token":"tok-1","user":{"id":1,"username":"alice","email":"a@b.c"}}`))
	}))
	defer srv.Close()

	m, store := newManager(t, srv.URL)
	require.NoError(t, m.Login(context.Background(), "a@b.c", "secret"))
	require.True(t, m.IsAuthenticated())
	require.Equal(t, "tok-1", m.Token())
	require.Equal(t, "alice", m.User().Username)

	st, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, "tok-1", st.Token)
	require.Equal(t, "alice", st.User.Username)
}

func TestLoginRejectedSurfacesBackendMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Invalid credentials"}`))
	}))
	defer srv.Close()

	m, _ := newManager(t, srv.URL)
	err := m.Login(context.Background(), "a@b.c", "wrong")

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	require.Equal(t, "Invalid credentials", authErr.Message)
	require.False(t, m.IsAuthenticated())
}

func TestRegisterStoresSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/register", r.URL.Path)
		w.Write([]byte(`{"token":"tok-2","user":{"id":2,"username":"bob","email":"b@b.c"}}`))
	}))
	defer srv.Close()

	m, _ := newManager(t, srv.URL)
	require.NoError(t, m.Register(context.Background(), "bob", "b@b.c", "secret"))
	require.Equal(t, "tok-2", m.Token())
}

func TestLogoutClearsEverything(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"token":"tok-1","user":{"id":1,"username":"alice","email":"a@b.c"}}`))
	}))
	defer srv.Close()

	m, store := newManager(t, srv.URL)
	require.NoError(t, m.Login(context.Background(), "a@b.c", "secret"))

	m.Logout()
	require.False(t, m.IsAuthenticated())
	require.Nil(t, m.User())

	st, err := store.Load()
	require.NoError(t, err)
	require.Nil(t, st)
}

func TestRehydrate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"token":"tok-1","user":{"id":1,"username":"alice","email":"a@b.c"}}`))
	}))
	defer srv.Close()

	m, store := newManager(t, srv.URL)
	require.NoError(t, m.Login(context.Background(), "a@b.c", "secret"))

	// Simulate a fresh start against the same store.
	m2 := NewManager(api.New(srv.URL, NewSessionID()), store)
	require.NoError(t, m2.Rehydrate())
	require.True(t, m2.IsAuthenticated())
	require.Equal(t, "alice", m2.User().Username)
}

func TestVerifyNoSessionIsNoop(t *testing.T) {
	m, _ := newManager(t, "http://127.0.0.1:1")
	require.NoError(t, m.Verify(context.Background()))
}

func TestVerifyRejectedTokenForcesLogout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Invalid token"}`))
	}))
	defer srv.Close()

	m, store := newManager(t, srv.URL)
	m.set("stale-token", nil)

	require.Error(t, m.Verify(context.Background()))
	require.False(t, m.IsAuthenticated())

	st, err := store.Load()
	require.NoError(t, err)
	require.Nil(t, st)
}

func TestVerifyExpiredJWTSkipsNetwork(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": 1,
		"exp":     time.Now().Add(-time.Hour).Unix(),
	}).SignedString([]byte("irrelevant"))
	require.NoError(t, err)

	m, _ := newManager(t, srv.URL)
	m.set(expired, nil)

	var authErr *AuthError
	require.ErrorAs(t, m.Verify(context.Background()), &authErr)
	require.False(t, m.IsAuthenticated())
	require.Zero(t, calls)
}

func TestTokenExpired(t *testing.T) {
	require.False(t, tokenExpired("not-a-jwt"))

	future, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("k"))
	require.NoError(t, err)
	require.False(t, tokenExpired(future))

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": 1,
	}).SignedString([]byte("k"))
	require.NoError(t, err)
	require.False(t, tokenExpired(noExp))
}

func TestUpdateProfileRefreshesUser(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"token":"tok-1","user":{"id":1,"username":"alice","email":"a@b.c"}}`))
	})
	mux.HandleFunc("/profile", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		w.Write([]byte(`{"message":"Profile updated successfully"}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	m, store := newManager(t, srv.URL)
	require.NoError(t, m.Login(context.Background(), "a@b.c", "secret"))
	require.NoError(t, m.UpdateProfile(context.Background(), "alice2"))
	require.Equal(t, "alice2", m.User().Username)

	st, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, "alice2", st.User.Username)
}

func TestProfileUnauthenticated(t *testing.T) {
	m, _ := newManager(t, "http://127.0.0.1:1")
	_, err := m.Profile(context.Background())
	require.ErrorIs(t, err, ErrNotAuthenticated)
}
