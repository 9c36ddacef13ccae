package apiclient

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Session is the client-side logged-in state the UI binds to. It exists only
// after a successful login or registration and is cleared whole on logout.
type Session struct {
	IsLoggedIn bool   `json:"isLoggedIn"`
	UserID     string `json:"userId,omitempty"`
	UserName   string `json:"userName,omitempty"`
	UserRole   string `json:"userRole,omitempty"`
	Token      string `json:"token,omitempty"`
}

type (
	SessionStore interface {
		Load() (*Session, error)
		Save(session Session) error
		Clear() error
	}

	fileSessionStore struct {
		path string
	}
)

func NewFileSessionStore(path string) SessionStore {
	return &fileSessionStore{path: path}
}

func (s *fileSessionStore) Load() (*Session, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Save writes through a temp file and renames so a crash mid-write never
// leaves a half-written session behind.
func (s *fileSessionStore) Save(session Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

func (s *fileSessionStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
