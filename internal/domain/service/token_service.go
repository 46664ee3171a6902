package service

import (
	"time"

	"containerview/internal/errors"
)

// ErrInvalidToken is the single failure reported for any undecodable, forged,
// expired or foreign token.
var ErrInvalidToken = errors.New("invalid or expired token")

// IssuedToken is a freshly signed token and its expiry.
type IssuedToken struct {
	Token     string
	Subject   string
	ExpiresAt time.Time
}

// TokenCodec signs and verifies self-contained bearer tokens for one token class.
type TokenCodec interface {
	// Issue signs a token whose subject is the identity.
	Issue(identity string) (*IssuedToken, error)

	// Validate returns the subject of a token that carries this class's issuer,
	// a valid signature and an unexpired lifetime.
	Validate(token string) (identity string, err error)
}

// SessionTokenCodec handles long-lived tokens proving completed authentication.
type SessionTokenCodec interface {
	TokenCodec
}

// StepUpTokenCodec handles short-lived tokens proving only the password check.
type StepUpTokenCodec interface {
	TokenCodec
}
