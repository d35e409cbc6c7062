// Package session persists the logged-in user's credentials between CLI
// invocations, the way the browser client keeps {userId, token} in local
// storage.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Session is the cached login state.
type Session struct {
	UserID string `json:"userId"`
	Token  string `json:"token"`
}

// LoggedIn reports whether the session carries a token. Expiry is judged by
// the server; a stale token simply earns a 401 on the next request.
func (s Session) LoggedIn() bool {
	return s.Token != ""
}

// Store reads and writes the session file.
type Store struct {
	path string
}

// NewStore places the session file under the user's home directory.
func NewStore() (*Store, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return NewStoreAt(filepath.Join(home, ".fittrack", "session.json")), nil
}

// NewStoreAt uses an explicit file path. Used by tests.
func NewStoreAt(path string) *Store {
	return &Store{path: path}
}

// Load reads the cached session. A missing file is an empty session, not
// an error.
func (s *Store) Load() (Session, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return Session{}, nil
	}
	if err != nil {
		return Session{}, fmt.Errorf("failed to read session file: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return Session{}, fmt.Errorf("failed to parse session file: %w", err)
	}
	return sess, nil
}

// Save writes the session with owner-only permissions.
func (s *Store) Save(sess Session) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

// Clear removes the session file. Clearing an absent session is a no-op.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}
