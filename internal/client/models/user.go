package models

// User is the authenticated user's profile record. Timestamps are kept as
// the backend's strings; the client only displays them.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at,omitempty"`
	LastLogin string `json:"last_login,omitempty"`
}
