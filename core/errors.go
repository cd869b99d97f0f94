package core

import "errors"

// Authentication errors
var (
	ErrUserExists = errors.New("username already taken") // 409 Conflict

	// ErrUserNotFound and ErrInvalidCredentials share one message on
	// purpose: UI-facing text must not reveal whether a username
	// exists. Callers that need the distinction branch with errors.Is.
	ErrUserNotFound       = errors.New("invalid username or password")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// Session errors
var (
	ErrNoSession = errors.New("no authenticated session") // nothing persisted, or stored value unreadable
)

// Validation errors (caller input)
var (
	ErrFirstNameRequired = errors.New("first name is required") // 400
	ErrLastNameRequired  = errors.New("last name is required")  // 400
	ErrUsernameRequired  = errors.New("username is required")   // 400
	ErrPasswordRequired  = errors.New("password is required")   // 400
)

// Remote store errors
var (
	// ErrStoreUnavailable is transient; re-invoking the same operation
	// is safe.
	ErrStoreUnavailable = errors.New("identity store unavailable")
)

// Config errors (caller-side configuration)
var (
	ErrSecretRequired        = errors.New("secret is required")
	ErrSecretTooShort        = errors.New("secret too short")
	ErrIdentityStoreRequired = errors.New("identity store adapter is required")
	ErrSessionStoreRequired  = errors.New("session store adapter is required")
)
