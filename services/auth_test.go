package services

import (
	"context"
	"errors"
	"testing"

	"github.com/centavo/centavo/core"
	"github.com/centavo/centavo/pkg/crypto"
)

const testSecret = "thisisadeploymentsecretthatis32ch"

func newTestService(t *testing.T) (*AuthService, *FakeIdentityStore, *FakeSessionStore) {
	t.Helper()
	identity := NewFakeIdentityStore()
	store := NewFakeSessionStore()
	sessions := NewSessionManager(store)
	passwords := crypto.NewArgon2(testSecret)
	return NewAuthService(identity, sessions, passwords, nil), identity, store
}

// Requirement: Register validates input, creates the user remotely and
// persists a session whose record carries no password field.
func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name    string
		input   core.Registration
		setup   func(*FakeIdentityStore, *FakeSessionStore)
		wantErr error
	}{
		{
			name:  "creates user and session for valid input",
			input: core.Registration{FirstName: "Alice", LastName: "Reyes", Username: "alice", Password: "secret1"},
		},
		{
			name:    "returns error for empty first name",
			input:   core.Registration{LastName: "Reyes", Username: "alice", Password: "secret1"},
			wantErr: core.ErrFirstNameRequired,
		},
		{
			name:    "returns error for empty last name",
			input:   core.Registration{FirstName: "Alice", Username: "alice", Password: "secret1"},
			wantErr: core.ErrLastNameRequired,
		},
		{
			name:    "returns error for empty username",
			input:   core.Registration{FirstName: "Alice", LastName: "Reyes", Password: "secret1"},
			wantErr: core.ErrUsernameRequired,
		},
		{
			name:    "returns error for empty password",
			input:   core.Registration{FirstName: "Alice", LastName: "Reyes", Username: "alice"},
			wantErr: core.ErrPasswordRequired,
		},
		{
			name:  "returns conflict for duplicate username",
			input: core.Registration{FirstName: "Alice", LastName: "Reyes", Username: "alice", Password: "secret1"},
			setup: func(identity *FakeIdentityStore, _ *FakeSessionStore) {
				identity.AddRecord(&core.UserRecord{User: core.User{ID: "existing", Username: "alice"}})
			},
			wantErr: core.ErrUserExists,
		},
		{
			name:  "surfaces remote failure and writes no session",
			input: core.Registration{FirstName: "Alice", LastName: "Reyes", Username: "alice", Password: "secret1"},
			setup: func(identity *FakeIdentityStore, _ *FakeSessionStore) {
				identity.createErr = core.ErrStoreUnavailable
			},
			wantErr: core.ErrStoreUnavailable,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			// Arrange
			service, identity, store := newTestService(t)
			if test.setup != nil {
				test.setup(identity, store)
			}
			ctx := context.Background()

			// Act
			user, err := service.Register(ctx, test.input)

			// Assert
			if !errors.Is(err, test.wantErr) {
				t.Fatalf("Register() error = %v, want %v", err, test.wantErr)
			}
			if test.wantErr != nil {
				if _, err := store.Load(ctx); !errors.Is(err, core.ErrNoSession) {
					t.Error("Register() failure must not leave a session behind")
				}
				return
			}
			if user == nil {
				t.Fatal("Register() returned nil user")
			}
			session, err := store.Load(ctx)
			if err != nil {
				t.Fatalf("Load() after Register error = %v", err)
			}
			if session.User.Username != test.input.Username {
				t.Errorf("session username = %q, want %q", session.User.Username, test.input.Username)
			}
		})
	}
}

// Requirement: a registration success persists the public fields only;
// the digest is stripped before the session is written.
func TestAuthService_Register_StripsDigest(t *testing.T) {
	// Arrange
	service, _, store := newTestService(t)
	ctx := context.Background()

	// Act
	user, err := service.Register(ctx, core.Registration{
		FirstName: "Alice", LastName: "Reyes", Username: "alice", Password: "secret1",
	})

	// Assert
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if user.Username != "alice" || user.ID == "" {
		t.Errorf("Register() user = %+v, want populated public record", user)
	}
	session, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if session.User != *user {
		t.Errorf("session user = %+v, want %+v", session.User, *user)
	}
}

// Requirement: Login authenticates against the stored digest and
// replaces the current session; all rejections leave prior state
// untouched and do not reveal whether the username exists.
func TestAuthService_Login(t *testing.T) {
	register := func(service *AuthService) {
		_, err := service.Register(context.Background(), core.Registration{
			FirstName: "Alice", LastName: "Reyes", Username: "alice", Password: "secret1",
		})
		if err != nil {
			panic(err)
		}
	}

	tests := []struct {
		name     string
		username string
		password string
		setup    func(*AuthService, *FakeIdentityStore)
		wantErr  error
	}{
		{
			name:     "logs in with correct credentials",
			username: "alice",
			password: "secret1",
			setup:    func(s *AuthService, _ *FakeIdentityStore) { register(s) },
		},
		{
			name:     "returns error for empty username",
			username: "",
			password: "secret1",
			wantErr:  core.ErrUsernameRequired,
		},
		{
			name:     "returns error for empty password",
			username: "alice",
			password: "",
			wantErr:  core.ErrPasswordRequired,
		},
		{
			name:     "rejects unknown username",
			username: "ghost",
			password: "secret1",
			setup:    func(s *AuthService, _ *FakeIdentityStore) { register(s) },
			wantErr:  core.ErrUserNotFound,
		},
		{
			name:     "rejects wrong password",
			username: "alice",
			password: "wrong",
			setup:    func(s *AuthService, _ *FakeIdentityStore) { register(s) },
			wantErr:  core.ErrInvalidCredentials,
		},
		{
			name:     "surfaces remote failure",
			username: "alice",
			password: "secret1",
			setup: func(s *AuthService, identity *FakeIdentityStore) {
				register(s)
				identity.findErr = core.ErrStoreUnavailable
			},
			wantErr: core.ErrStoreUnavailable,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			// Arrange
			service, identity, store := newTestService(t)
			if test.setup != nil {
				test.setup(service, identity)
			}
			ctx := context.Background()
			priorSaves := store.saves

			// Act
			user, err := service.Login(ctx, test.username, test.password)

			// Assert
			if !errors.Is(err, test.wantErr) {
				t.Fatalf("Login() error = %v, want %v", err, test.wantErr)
			}
			if test.wantErr != nil {
				if store.saves != priorSaves {
					t.Error("Login() failure must not write a session")
				}
				return
			}
			if user == nil || user.Username != test.username {
				t.Fatalf("Login() user = %+v, want username %q", user, test.username)
			}
			session, err := store.Load(ctx)
			if err != nil {
				t.Fatalf("Load() after Login error = %v", err)
			}
			if session.User.Username != test.username {
				t.Errorf("session username = %q, want %q", session.User.Username, test.username)
			}
		})
	}
}

// Requirement: unknown-username and wrong-password rejections carry the
// same message, so no UI surface can enumerate usernames.
func TestAuthService_Login_RejectionsShareMessage(t *testing.T) {
	if core.ErrUserNotFound.Error() != core.ErrInvalidCredentials.Error() {
		t.Errorf("rejection messages differ: %q vs %q",
			core.ErrUserNotFound.Error(), core.ErrInvalidCredentials.Error())
	}
	if errors.Is(core.ErrUserNotFound, core.ErrInvalidCredentials) {
		t.Error("rejection sentinels must stay distinguishable via errors.Is")
	}
}

// Requirement: Login returns the same public identity fields as the
// registration that created the user.
func TestAuthService_Login_MatchesRegistration(t *testing.T) {
	// Arrange
	service, _, _ := newTestService(t)
	ctx := context.Background()
	registered, err := service.Register(ctx, core.Registration{
		FirstName: "Alice", LastName: "Reyes", Username: "alice", Password: "secret1",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	// Act
	loggedIn, err := service.Login(ctx, "alice", "secret1")

	// Assert
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if *loggedIn != *registered {
		t.Errorf("Login() user = %+v, want %+v", *loggedIn, *registered)
	}
}

// Requirement: a login as a different user silently replaces the prior
// session.
func TestAuthService_Login_ReplacesSession(t *testing.T) {
	// Arrange
	service, _, store := newTestService(t)
	ctx := context.Background()
	if _, err := service.Register(ctx, core.Registration{
		FirstName: "Alice", LastName: "Reyes", Username: "alice", Password: "secret1",
	}); err != nil {
		t.Fatalf("Register(alice) error = %v", err)
	}
	if err := service.Logout(ctx); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}
	if _, err := service.Register(ctx, core.Registration{
		FirstName: "Bob", LastName: "Santos", Username: "bob", Password: "secret2",
	}); err != nil {
		t.Fatalf("Register(bob) error = %v", err)
	}

	// Act
	if _, err := service.Login(ctx, "alice", "secret1"); err != nil {
		t.Fatalf("Login(alice) error = %v", err)
	}

	// Assert
	session, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if session.User.Username != "alice" {
		t.Errorf("session username = %q, want %q", session.User.Username, "alice")
	}
}

// Requirement: when the store holds duplicate usernames, the first
// record wins deterministically.
func TestAuthService_Login_FirstRecordWins(t *testing.T) {
	// Arrange
	service, identity, _ := newTestService(t)
	passwords := crypto.NewArgon2(testSecret)
	digest, _ := passwords.Hash("secret1")
	identity.AddRecord(&core.UserRecord{
		User:     core.User{ID: "first", FirstName: "Alice", LastName: "Reyes", Username: "alice"},
		Password: digest,
	})
	identity.AddRecord(&core.UserRecord{
		User:     core.User{ID: "second", FirstName: "Alice", LastName: "Cruz", Username: "alice"},
		Password: digest,
	})

	// Act
	user, err := service.Login(context.Background(), "alice", "secret1")

	// Assert
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if user.ID != "first" {
		t.Errorf("Login() selected record %q, want %q", user.ID, "first")
	}
}

// Requirement: a failing session save is surfaced to the caller; it
// must not be silently downgraded to "logged out".
func TestAuthService_Login_SurfacesSaveFailure(t *testing.T) {
	// Arrange
	service, _, store := newTestService(t)
	ctx := context.Background()
	if _, err := service.Register(ctx, core.Registration{
		FirstName: "Alice", LastName: "Reyes", Username: "alice", Password: "secret1",
	}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	saveErr := errors.New("disk full")
	store.saveErr = saveErr

	// Act
	_, err := service.Login(ctx, "alice", "secret1")

	// Assert
	if !errors.Is(err, saveErr) {
		t.Errorf("Login() error = %v, want wrapped %v", err, saveErr)
	}
}

// Requirement: Logout clears the session, is idempotent, and a cleared
// store reports no session.
func TestAuthService_Logout(t *testing.T) {
	// Arrange
	service, _, store := newTestService(t)
	ctx := context.Background()
	if _, err := service.Register(ctx, core.Registration{
		FirstName: "Alice", LastName: "Reyes", Username: "alice", Password: "secret1",
	}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	// Act
	if err := service.Logout(ctx); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}
	// Logging out twice must succeed as well.
	if err := service.Logout(ctx); err != nil {
		t.Fatalf("second Logout() error = %v", err)
	}

	// Assert
	if _, err := store.Load(ctx); !errors.Is(err, core.ErrNoSession) {
		t.Errorf("Load() after Logout error = %v, want %v", err, core.ErrNoSession)
	}
	if _, err := service.CurrentSession(ctx); !errors.Is(err, core.ErrNoSession) {
		t.Errorf("CurrentSession() after Logout error = %v, want %v", err, core.ErrNoSession)
	}
}
