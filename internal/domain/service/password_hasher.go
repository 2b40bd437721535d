// Package service declares the stateless collaborators the usecases call:
// hashing, tokens, QR images, events and metrics.
package service

// PasswordHasher salts and verifies passwords. Only the first 72 bytes of a
// password are significant.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Check reports whether password matches hash. A malformed hash never matches.
	Check(password, hash string) bool
}
