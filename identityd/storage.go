package identityd

import (
	"context"

	"github.com/centavo/centavo/core"
)

// UserStorage is the record store behind the identity endpoints.
// Implementations assign ID and CreatedAt on create and return
// core.ErrUserExists when the username is already taken.
type UserStorage interface {
	CreateUser(ctx context.Context, record *core.UserRecord) error
	FindByUsername(ctx context.Context, username string) ([]*core.UserRecord, error)
}
