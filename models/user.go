package models

import "time"

// User is an account record of the users table.
//
// An account is usable for login only when PasswordHash or GoogleID is set:
// local accounts carry a password hash, accounts created by Google sign-in
// carry the OpenID subject instead.
type User struct {
	// ID is the server-assigned identifier and the subject of session tokens.
	ID int64 `json:"user_id"`

	// Name is the display name.
	Name string `json:"name"`

	// Email is unique across all users and matched exactly (case-sensitive).
	Email string `json:"email"`

	// PasswordHash is the argon2id PHC digest, nil for OAuth-only accounts.
	// It never leaves the server.
	PasswordHash *string `json:"-"`

	// GoogleID is the stable OpenID subject issued by Google, nil for local
	// accounts. Unique when present.
	GoogleID *string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// HasPassword reports whether the account can be used for local login.
func (u User) HasPassword() bool {
	return u.PasswordHash != nil && *u.PasswordHash != ""
}

// CanLogin reports whether at least one login path is configured.
func (u User) CanLogin() bool {
	return u.HasPassword() || (u.GoogleID != nil && *u.GoogleID != "")
}
