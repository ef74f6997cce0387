// Package session owns client identity: the per-run session identifier, the
// optional authenticated session (token + user), and the durable state file
// those are persisted to. It is the only package that touches the state file.
package session

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotAuthenticated is returned when an operation requires a logged-in
	// user and there is none. Callers match it with errors.Is and send the
	// user to the login flow.
	ErrNotAuthenticated = errors.New("not authenticated")
)

// AuthError carries the backend's message for a rejected login or register.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }

// NewSessionID generates the correlation identifier sent with every request.
// It combines a random component with a base-36 monotonic time component so
// concurrent clients are overwhelmingly unlikely to collide. It is not a
// credential; collisions are tolerable.
func NewSessionID() string {
	random := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return fmt.Sprintf("session_%s%s", random, strconv.FormatInt(time.Now().UnixMilli(), 36))
}
