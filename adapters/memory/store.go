// Package memory implements core.SessionStore in process memory, for
// tests and callers that do not want the session to outlive the
// process.
package memory

import (
	"context"
	"sync"

	"github.com/centavo/centavo/core"
)

type Store struct {
	mu      sync.RWMutex
	session *core.Session
}

var _ core.SessionStore = (*Store)(nil)

func New() *Store {
	return &Store{}
}

func (s *Store) Save(ctx context.Context, session *core.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copy := *session
	s.session = &copy
	return nil
}

func (s *Store) Load(ctx context.Context) (*core.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.session == nil {
		return nil, core.ErrNoSession
	}
	copy := *s.session
	return &copy, nil
}

func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = nil
	return nil
}
