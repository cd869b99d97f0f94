package services

import (
	"context"
	"sync"
	"time"

	"github.com/centavo/centavo/core"
)

// FakeIdentityStore is a test-only fake implementing core.IdentityStore.
// It stores records in a map keyed by username and exposes error fields
// for behavior injection.
type FakeIdentityStore struct {
	mu      sync.RWMutex
	records map[string][]*core.UserRecord

	createErr error
	findErr   error
}

func NewFakeIdentityStore() *FakeIdentityStore {
	return &FakeIdentityStore{
		records: make(map[string][]*core.UserRecord),
	}
}

func (f *FakeIdentityStore) CreateUser(ctx context.Context, reg core.Registration) (*core.UserRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return nil, f.createErr
	}
	if len(f.records[reg.Username]) > 0 {
		return nil, core.ErrUserExists
	}

	record := &core.UserRecord{
		User: core.User{
			ID:        "user-" + reg.Username,
			FirstName: reg.FirstName,
			LastName:  reg.LastName,
			Username:  reg.Username,
			CreatedAt: time.Now(),
		},
		Password: reg.Password,
	}
	f.records[reg.Username] = append(f.records[reg.Username], record)

	out := *record
	return &out, nil
}

func (f *FakeIdentityStore) FindByUsername(ctx context.Context, username string) ([]*core.UserRecord, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.findErr != nil {
		return nil, f.findErr
	}

	var out []*core.UserRecord
	for _, r := range f.records[username] {
		copy := *r
		out = append(out, &copy)
	}
	return out, nil
}

// AddRecord seeds a record directly, bypassing CreateUser checks.
func (f *FakeIdentityStore) AddRecord(record *core.UserRecord) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records[record.Username] = append(f.records[record.Username], record)
}

// FakeSessionStore is a test-only fake implementing core.SessionStore.
type FakeSessionStore struct {
	mu      sync.RWMutex
	session *core.Session

	saveErr  error
	loadErr  error
	clearErr error

	saves int
}

func NewFakeSessionStore() *FakeSessionStore {
	return &FakeSessionStore{}
}

func (f *FakeSessionStore) Save(ctx context.Context, session *core.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.saveErr != nil {
		return f.saveErr
	}

	copy := *session
	f.session = &copy
	f.saves++
	return nil
}

func (f *FakeSessionStore) Load(ctx context.Context) (*core.Session, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.loadErr != nil {
		return nil, f.loadErr
	}
	if f.session == nil {
		return nil, core.ErrNoSession
	}
	copy := *f.session
	return &copy, nil
}

func (f *FakeSessionStore) Clear(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.clearErr != nil {
		return f.clearErr
	}
	f.session = nil
	return nil
}
