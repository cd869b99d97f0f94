package identityd

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/centavo/centavo/core"
)

// MemoryStorage keeps user records in process memory. It is the
// default backend for development runs.
type MemoryStorage struct {
	mu    sync.RWMutex
	users map[string]*core.UserRecord // keyed by username
}

var _ UserStorage = (*MemoryStorage)(nil)

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		users: make(map[string]*core.UserRecord),
	}
}

func (m *MemoryStorage) CreateUser(ctx context.Context, record *core.UserRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.users[record.Username]; exists {
		return core.ErrUserExists
	}

	record.ID = uuid.NewString()
	record.CreatedAt = time.Now().UTC()

	stored := *record
	m.users[record.Username] = &stored
	return nil
}

func (m *MemoryStorage) FindByUsername(ctx context.Context, username string) ([]*core.UserRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, exists := m.users[username]
	if !exists {
		return []*core.UserRecord{}, nil
	}
	out := *record
	return []*core.UserRecord{&out}, nil
}
