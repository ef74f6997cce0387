package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"recipefinder/internal/client/api"
	"recipefinder/internal/client/models"
)

// Manager holds the in-memory auth session and keeps it in sync with the
// durable store. The auth session is either fully present (token and user)
// or fully absent; there is no partial state.
//
// Token is read from request goroutines during the concurrent initial load,
// so access to the session fields is guarded by a mutex.
type Manager struct {
	client *api.Client
	store  *Store

	mu    sync.RWMutex
	token string
	user  *models.User
}

// NewManager returns a Manager bound to the given API client and store.
// Call Rehydrate to pick up a persisted session, then wire the manager into
// the client with SetTokenSource.
func NewManager(client *api.Client, store *Store) *Manager {
	return &Manager{client: client, store: store}
}

// Token implements api.TokenSource.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

// User returns the current user profile, or nil when unauthenticated.
func (m *Manager) User() *models.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user
}

// IsAuthenticated reports whether an auth session is present.
func (m *Manager) IsAuthenticated() bool {
	return m.Token() != ""
}

// Rehydrate loads a persisted auth session into memory, if one exists.
func (m *Manager) Rehydrate() error {
	st, err := m.store.Load()
	if err != nil {
		return err
	}
	if st == nil {
		return nil
	}
	m.set(st.Token, st.User)
	return nil
}

func (m *Manager) set(token string, user *models.User) {
	m.mu.Lock()
	m.token = token
	m.user = user
	m.mu.Unlock()
}

// authResponse is the body of a successful /login or /register.
type authResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Login authenticates with the backend and stores the resulting session in
// memory and in the durable store. A rejected login surfaces as *AuthError
// carrying the backend's message.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	body := map[string]string{"email": email, "password": password}
	return m.authenticate(ctx, "/login", body)
}

// Register creates an account; same session handling as Login.
func (m *Manager) Register(ctx context.Context, username, email, password string) error {
	body := map[string]string{"username": username, "email": email, "password": password}
	return m.authenticate(ctx, "/register", body)
}

func (m *Manager) authenticate(ctx context.Context, path string, body map[string]string) error {
	var resp authResponse
	if err := m.client.PostJSON(ctx, path, body, &resp); err != nil {
		var httpErr *api.HTTPError
		if errors.As(err, &httpErr) {
			return &AuthError{Message: httpErr.Message}
		}
		return err
	}
	if resp.Token == "" || resp.User == nil {
		return &AuthError{Message: "malformed auth response"}
	}
	m.set(resp.Token, resp.User)
	return m.store.Save(&State{Token: resp.Token, User: resp.User})
}

// Logout clears the auth session unconditionally. It never fails: a store
// error still leaves the in-memory session cleared.
func (m *Manager) Logout() {
	m.set("", nil)
	_ = m.store.Clear()
}

// Verify checks a rehydrated session at startup. A token whose exp claim is
// already past is cleared without a network round-trip; otherwise /profile is
// probed and any failure is treated as an invalid token and forces logout.
// With no session present it is a no-op.
func (m *Manager) Verify(ctx context.Context) error {
	token := m.Token()
	if token == "" {
		return nil
	}
	if tokenExpired(token) {
		m.Logout()
		return &AuthError{Message: "session expired"}
	}
	if _, err := m.Profile(ctx); err != nil {
		m.Logout()
		return err
	}
	return nil
}

// tokenExpired peeks at the JWT exp claim without verifying the signature.
// Verification is the backend's job; this only avoids a doomed round-trip.
// Tokens that are not JWTs or carry no exp claim are not considered expired.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}

// Profile fetches the authenticated user's profile from the backend.
func (m *Manager) Profile(ctx context.Context) (*models.User, error) {
	if !m.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}
	var resp struct {
		User *models.User `json:"user"`
	}
	if err := m.client.GetJSON(ctx, "/profile", &resp); err != nil {
		return nil, err
	}
	if resp.User != nil {
		m.mu.Lock()
		m.user = resp.User
		m.mu.Unlock()
	}
	return resp.User, nil
}

// UpdateProfile changes the username and refreshes the stored user record.
func (m *Manager) UpdateProfile(ctx context.Context, username string) error {
	if !m.IsAuthenticated() {
		return ErrNotAuthenticated
	}
	if err := m.client.PutJSON(ctx, "/profile", map[string]string{"username": username}, nil); err != nil {
		var httpErr *api.HTTPError
		if errors.As(err, &httpErr) {
			return &AuthError{Message: httpErr.Message}
		}
		return err
	}

	m.mu.Lock()
	if m.user != nil {
		u := *m.user
		u.Username = username
		m.user = &u
	}
	token, user := m.token, m.user
	m.mu.Unlock()

	return m.store.Save(&State{Token: token, User: user})
}
