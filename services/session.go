package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/centavo/centavo/core"
)

// SessionManager is the single source of truth for "who is logged in
// on this device". It wraps the durable SessionStore with a
// write-through in-memory copy so callers get a cheap Current lookup,
// and hands out session values instead of ambient global state.
type SessionManager struct {
	store core.SessionStore

	mu      sync.RWMutex
	current *core.Session // nil when logged out
	loaded  bool          // whether current reflects the store
}

func NewSessionManager(store core.SessionStore) *SessionManager {
	return &SessionManager{store: store}
}

// Establish persists a session for user, replacing any prior one. The
// in-memory copy is updated only after the store write succeeds.
func (sm *SessionManager) Establish(ctx context.Context, user *core.User) (*core.Session, error) {
	session := &core.Session{
		User:      *user,
		CreatedAt: time.Now(),
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if err := sm.store.Save(ctx, session); err != nil {
		return nil, err
	}

	sm.current = session
	sm.loaded = true

	out := *session
	return &out, nil
}

// Current returns a copy of the active session, loading it from the
// store on first use. Returns core.ErrNoSession when nobody is logged
// in.
func (sm *SessionManager) Current(ctx context.Context) (*core.Session, error) {
	sm.mu.RLock()
	if sm.loaded {
		session := sm.current
		sm.mu.RUnlock()
		if session == nil {
			return nil, core.ErrNoSession
		}
		out := *session
		return &out, nil
	}
	sm.mu.RUnlock()

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.loaded {
		session, err := sm.store.Load(ctx)
		if err != nil {
			if !errors.Is(err, core.ErrNoSession) {
				return nil, err
			}
			session = nil
		}
		sm.current = session
		sm.loaded = true
	}

	if sm.current == nil {
		return nil, core.ErrNoSession
	}
	out := *sm.current
	return &out, nil
}

// Drop clears the persisted session. Dropping an already-empty session
// succeeds silently.
func (sm *SessionManager) Drop(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if err := sm.store.Clear(ctx); err != nil {
		return err
	}

	sm.current = nil
	sm.loaded = true
	return nil
}
