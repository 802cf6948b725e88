// Package session persists the login record outside the cache database,
// the way the original client kept it in a small preferences store.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"storyfeed/internal/domain"
)

// Store is a file-backed singleton session record. Reads return a
// snapshot; writes replace the file atomically via rename.
type Store struct {
	mu   sync.RWMutex
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load returns the stored session, or a logged-out zero value when no
// session has been saved yet.
func (s *Store) Load() (domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return domain.Session{}, nil
	}
	if err != nil {
		return domain.Session{}, fmt.Errorf("read session file: %w", err)
	}

	var sess domain.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return domain.Session{}, fmt.Errorf("parse session file: %w", err)
	}
	return sess, nil
}

// ErrEmptyToken is returned by Save for a session without a token: a
// logged-in record must always carry one.
var ErrEmptyToken = errors.New("session token is empty")

// Save persists the session, marking it logged in.
func (s *Store) Save(sess domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess.Token == "" {
		return ErrEmptyToken
	}
	sess.IsLoggedIn = true

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace session file: %w", err)
	}
	return nil
}

// Clear removes the stored session.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}
