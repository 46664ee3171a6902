// Package service declares the ports the usecases depend on: token codecs, hashing,
// code delivery, TOTP, limits, metrics and event publishing.
package service

// PasswordHasher hashes and checks primary credentials.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password matches hash, comparing in constant time.
	Check(password, hash string) bool

	// ValidatePasswordStrength returns ErrPasswordStrength for passwords outside policy.
	ValidatePasswordStrength(password string) error
}
