// Package file implements core.SessionStore as a single JSON file on
// the device, the durable equivalent of the one storage key the mobile
// client used.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/centavo/centavo/core"
)

type Store struct {
	path string
	mu   sync.Mutex
}

var _ core.SessionStore = (*Store)(nil)

func New(path string) *Store {
	return &Store{path: path}
}

// Save writes the session to a temp file and renames it into place, so
// a concurrent Load observes either the old record or the new one,
// never a torn write.
func (s *Store) Save(ctx context.Context, session *core.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp := s.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace session: %w", err)
	}
	return nil
}

// Load returns core.ErrNoSession when the file is missing, unreadable
// or does not decode: corrupt local state reads as "logged out", never
// as an error.
func (s *Store) Load(ctx context.Context) (*core.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, core.ErrNoSession
	}

	var session core.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, core.ErrNoSession
	}
	if session.User.Username == "" {
		return nil, core.ErrNoSession
	}
	return &session, nil
}

// Clear removes the session file; a missing file is not an error.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove session: %w", err)
	}
	return nil
}
