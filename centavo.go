// Package centavo manages credentials and the session lifecycle for a
// single-user device client of a remote identity store: it hashes
// passwords before they leave the process, drives registration and
// login against the store, and persists the current session locally so
// the rest of the application has one source of truth for "who is
// logged in".
package centavo

import (
	"fmt"
	"log/slog"

	"github.com/centavo/centavo/core"
	"github.com/centavo/centavo/pkg/crypto"
	"github.com/centavo/centavo/services"
)

// interfaces
type (
	IdentityStore = core.IdentityStore
	SessionStore  = core.SessionStore

	PasswordHandler = crypto.PasswordHandler
)

// structs
type (
	User         = core.User
	UserRecord   = core.UserRecord
	Registration = core.Registration
	Session      = core.Session
)

const (
	defaultSecretLen = 32
)

// Constructors & helpers (convenience re-exports)
var (
	NewArgon2 = crypto.NewArgon2
)

var (
	ErrUserExists         = core.ErrUserExists
	ErrUserNotFound       = core.ErrUserNotFound
	ErrInvalidCredentials = core.ErrInvalidCredentials
	ErrNoSession          = core.ErrNoSession
)

var (
	ErrFirstNameRequired = core.ErrFirstNameRequired
	ErrLastNameRequired  = core.ErrLastNameRequired
	ErrUsernameRequired  = core.ErrUsernameRequired
	ErrPasswordRequired  = core.ErrPasswordRequired
)

var (
	ErrStoreUnavailable = core.ErrStoreUnavailable
)

var (
	ErrSecretRequired        = core.ErrSecretRequired
	ErrSecretTooShort        = core.ErrSecretTooShort
	ErrIdentityStoreRequired = core.ErrIdentityStoreRequired
	ErrSessionStoreRequired  = core.ErrSessionStoreRequired
)

type Config struct {
	// Secret salts password digests. Every device of a deployment must
	// share it, or digests stop matching the identity store's records.
	Secret string

	Identity core.IdentityStore
	Sessions core.SessionStore

	// Optional config
	PasswordHasher crypto.PasswordHandler
	Logger         *slog.Logger
}

type Centavo struct {
	Auth           *services.AuthService
	Sessions       *services.SessionManager
	PasswordHasher crypto.PasswordHandler
}

func New(config Config) (*Centavo, error) {
	if config.Secret == "" {
		return nil, ErrSecretRequired
	}
	if len(config.Secret) < defaultSecretLen {
		return nil, fmt.Errorf("%w - minimum of %d characters", ErrSecretTooShort, defaultSecretLen)
	}
	if config.Identity == nil {
		return nil, ErrIdentityStoreRequired
	}
	if config.Sessions == nil {
		return nil, ErrSessionStoreRequired
	}

	// Set Defaults

	passwordHasher := config.PasswordHasher
	if passwordHasher == nil {
		passwordHasher = crypto.NewArgon2(config.Secret)
	}

	sessionManager := services.NewSessionManager(config.Sessions)
	authService := services.NewAuthService(
		config.Identity,
		sessionManager,
		passwordHasher,
		config.Logger,
	)

	return &Centavo{
		Auth:           authService,
		Sessions:       sessionManager,
		PasswordHasher: passwordHasher,
	}, nil
}
