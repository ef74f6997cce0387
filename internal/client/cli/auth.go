package cli

import (
	"context"
	"errors"
	"fmt"

	"recipefinder/internal/client/render"
	"recipefinder/internal/client/session"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates. A backend rejection shows
// the backend's own message, form-style, instead of a generic failure.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.session.Login(ctx, email, password); err != nil {
		var authErr *session.AuthError
		if errors.As(err, &authErr) {
			a.notifyError(authErr.Message)
		} else {
			a.notifyError("Login failed")
		}
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", a.session.User().Username)
	return nil
}

// Register prompts for account details and creates an account. Success logs
// the user in immediately, mirroring the backend's combined response.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Choose a username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.session.Register(ctx, username, email, password); err != nil {
		var authErr *session.AuthError
		if errors.As(err, &authErr) {
			a.notifyError(authErr.Message)
		} else {
			a.notifyError("Registration failed")
		}
		return err
	}

	fmt.Fprintf(a.out, "Account created. Welcome, %s!\n", a.session.User().Username)
	return nil
}

// Logout clears the auth session. It cannot fail.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout()
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// Profile fetches and displays the authenticated user's profile.
func (a *App) Profile(ctx context.Context) error {
	user, err := a.session.Profile(ctx)
	if err != nil {
		if errors.Is(err, session.ErrNotAuthenticated) {
			a.notifyError("Please log in to view your profile")
			return nil
		}
		a.notifyError("Failed to load profile")
		return err
	}

	p := render.NewProfilePanel(*user)
	fmt.Fprintf(a.out, "Username: %s\nEmail:    %s\n", p.Username, p.Email)
	if p.Joined != "" {
		fmt.Fprintf(a.out, "Joined:   %s\n", p.Joined)
	}
	if p.LastLogin != "" {
		fmt.Fprintf(a.out, "Last login: %s\n", p.LastLogin)
	}
	return nil
}

// SetUsername updates the profile's username.
func (a *App) SetUsername(ctx context.Context, name string) error {
	if err := a.session.UpdateProfile(ctx, name); err != nil {
		if errors.Is(err, session.ErrNotAuthenticated) {
			a.notifyError("Please log in first")
			return nil
		}
		var authErr *session.AuthError
		if errors.As(err, &authErr) {
			a.notifyError(authErr.Message)
		} else {
			a.notifyError("Profile update failed")
		}
		return err
	}
	fmt.Fprintln(a.out, "Profile updated.")
	return nil
}
