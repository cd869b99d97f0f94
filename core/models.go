package core

import "time"

// User is the public identity record
//
// This is what the identity store returns once the password digest has
// been stripped, and the only shape callers of the library ever see.
type User struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserRecord is the identity store's authoritative record: the public
// fields plus the password digest. The digest exists client-side only
// while an auth call is in flight and must never be persisted on the
// device.
type UserRecord struct {
	User
	Password string `json:"password,omitempty"`
}

// Public returns a copy of the record with the digest stripped.
func (r *UserRecord) Public() *User {
	u := r.User
	return &u
}

// Registration carries the fields sent to the identity store when
// creating a user. Password is plaintext at the service boundary and a
// digest once it crosses the IdentityStore port.
type Registration struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `json:"username"`
	Password  string `json:"password"`
}

// Session marks which identity is currently authenticated on this
// device. It holds public fields only; a session never carries a
// password, hashed or otherwise.
type Session struct {
	User      User      `json:"user"`
	CreatedAt time.Time `json:"createdAt"`
}
