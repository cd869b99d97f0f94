package core

import "context"

// Ports define interfaces for external dependencies

// ============================================
// IDENTITY PORT (remote service of record)
// ============================================

// IdentityStore is the remote store that owns user accounts. The
// library only ever creates records and looks them up by username.
type IdentityStore interface {
	// CreateUser registers a new user. The Password field of reg must
	// already be a digest. Returns ErrUserExists when the username is
	// taken and ErrStoreUnavailable on transport or server failure.
	CreateUser(ctx context.Context, reg Registration) (*UserRecord, error)

	// FindByUsername returns every record matching username. An empty
	// result is not an error.
	FindByUsername(ctx context.Context, username string) ([]*UserRecord, error)
}

// ============================================
// SESSION PORT (local durable storage)
// ============================================

// SessionStore persists at most one session on the local device.
// Save and Clear must be atomic with respect to Load: a concurrent
// reader never observes a half-written record.
type SessionStore interface {
	// Save overwrites any existing session.
	Save(ctx context.Context, session *Session) error

	// Load returns ErrNoSession when nothing is persisted or the
	// stored value cannot be decoded.
	Load(ctx context.Context) (*Session, error)

	// Clear removes any persisted session; clearing an empty store
	// succeeds silently.
	Clear(ctx context.Context) error
}
