package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/centavo/centavo/core"
	"github.com/centavo/centavo/pkg/crypto"
)

// AuthService orchestrates registration, login and logout against the
// remote identity store. A session is only ever written after the
// remote call has succeeded; failures leave the session store
// untouched.
type AuthService struct {
	identity  core.IdentityStore
	sessions  *SessionManager
	passwords crypto.PasswordHandler
	log       *slog.Logger
}

func NewAuthService(identity core.IdentityStore, sessions *SessionManager, passwords crypto.PasswordHandler, log *slog.Logger) *AuthService {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &AuthService{
		identity:  identity,
		sessions:  sessions,
		passwords: passwords,
		log:       log,
	}
}

// Register creates a new user on the identity store and establishes a
// local session for it. input.Password is plaintext; it is hashed
// before anything leaves the process.
func (s *AuthService) Register(ctx context.Context, input core.Registration) (*core.User, error) {
	// Step 1: Validate input
	if err := validateRegistration(input); err != nil {
		return nil, err
	}

	// Step 2: Hash the password
	digest, err := s.passwords.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// Step 3: Create the user on the identity store
	reg := input
	reg.Password = digest
	record, err := s.identity.CreateUser(ctx, reg)
	if err != nil {
		return nil, err
	}

	// Step 4: Strip the digest and persist the session
	user := record.Public()
	if _, err := s.sessions.Establish(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	s.log.InfoContext(ctx, "user registered", "username", user.Username)
	return user, nil
}

// Login authenticates username/password against the identity store and
// establishes a local session, replacing any prior one. The returned
// error does not reveal whether the username or the password was wrong;
// the distinction is logged at debug level only.
func (s *AuthService) Login(ctx context.Context, username, password string) (*core.User, error) {
	// Step 1: Validate input
	if username == "" {
		return nil, core.ErrUsernameRequired
	}
	if password == "" {
		return nil, core.ErrPasswordRequired
	}

	// Step 2: Look the user up
	records, err := s.identity.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		s.log.DebugContext(ctx, "login rejected", "reason", "unknown username")
		return nil, core.ErrUserNotFound
	}

	// Usernames are expected unique; should the store hold duplicates,
	// the first record wins.
	record := records[0]

	// Step 3: Verify the password
	valid, err := s.passwords.Verify(password, record.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !valid {
		s.log.DebugContext(ctx, "login rejected", "reason", "password mismatch")
		return nil, core.ErrInvalidCredentials
	}

	// Step 4: Strip the digest and persist the session
	user := record.Public()
	if _, err := s.sessions.Establish(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in", "username", user.Username)
	return user, nil
}

// Logout drops the local session. It is idempotent and involves no
// remote interaction.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.sessions.Drop(ctx)
}

// CurrentSession returns the session of the currently authenticated
// identity, or core.ErrNoSession when nobody is logged in.
func (s *AuthService) CurrentSession(ctx context.Context) (*core.Session, error) {
	return s.sessions.Current(ctx)
}

func validateRegistration(input core.Registration) error {
	if input.FirstName == "" {
		return core.ErrFirstNameRequired
	}
	if input.LastName == "" {
		return core.ErrLastNameRequired
	}
	if input.Username == "" {
		return core.ErrUsernameRequired
	}
	if input.Password == "" {
		return core.ErrPasswordRequired
	}
	return nil
}
