// Package crypto provides password hashing for local accounts.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher is a one-way, salted, memory-hard password hash.
//
// Hash produces a self-describing digest that embeds the algorithm
// parameters and the salt, so Verify needs nothing but the digest itself.
type PasswordHasher interface {
	// Hash returns the digest of password. Two calls with the same input
	// return different digests.
	Hash(password string) (string, error)

	// Verify reports whether password matches digest. A malformed or
	// foreign digest is reported as a mismatch.
	Verify(password, digest string) bool
}
