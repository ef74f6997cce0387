package session

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	"recipefinder/internal/client/models"
)

// State is the durable part of an auth session: exactly the token and the
// user profile, always written and cleared together.
type State struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Store persists State as a single JSON file. Writes replace the whole file
// via a temp file and rename, so a crash never leaves a half-written state.
type Store struct {
	path string
}

// NewStore returns a Store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the persisted state. A missing file is not an error; it returns
// a nil State, meaning no auth session survived.
func (s *Store) Load() (*State, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, err
	}
	if st.Token == "" || st.User == nil {
		// Partially populated state is treated as absent.
		return nil, nil
	}
	return &st, nil
}

// Save writes the state atomically. The file is chmod 0600 since it holds
// a credential.
func (s *Store) Save(st *State) error {
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// Clear removes the state file. A file that was never written is fine.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
