// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"containerview/config"
	"containerview/internal/domain/service"
	"containerview/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// SessionIssuer marks tokens that prove a completed authentication.
	SessionIssuer = "container-view"
	// StepUpIssuer marks tokens that only prove the password check.
	StepUpIssuer = "container-view-2fa"
)

// jwtCodec signs and verifies HS256 tokens of a single issuer.
type jwtCodec struct {
	issuer string
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewSessionTokenCodec builds the codec for session tokens.
func NewSessionTokenCodec(cfg *config.Config) (service.SessionTokenCodec, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("session token secret must be provided")
	}

	return newJWTCodec(SessionIssuer, cfg.SecretKey.Session, cfg.Auth.SessionTokenTTL, time.Now), nil
}

// NewStepUpTokenCodec builds the codec for step-up tokens.
func NewStepUpTokenCodec(cfg *config.Config) (service.StepUpTokenCodec, error) {
	if cfg.SecretKey.StepUp == "" {
		return nil, errors.New("step-up token secret must be provided")
	}
	if cfg.SecretKey.StepUp == cfg.SecretKey.Session {
		return nil, errors.New("step-up token secret must differ from the session secret")
	}

	return newJWTCodec(StepUpIssuer, cfg.SecretKey.StepUp, cfg.Auth.StepUpTokenTTL, time.Now), nil
}

func newJWTCodec(issuer, secret string, ttl time.Duration, now func() time.Time) *jwtCodec {
	return &jwtCodec{
		issuer: issuer,
		secret: []byte(secret),
		ttl:    ttl,
		now:    now,
	}
}

// Issue signs {iss, sub, iat, exp} with the codec's secret.
func (c *jwtCodec) Issue(identity string) (*service.IssuedToken, error) {
	if identity == "" {
		return nil, errors.New("token subject must not be empty")
	}

	issuedAt := c.now()
	expiresAt := issuedAt.Add(c.ttl)
	claims := jwt.RegisteredClaims{
		Issuer:    c.issuer,
		Subject:   identity,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign token")
	}

	return &service.IssuedToken{
		Token:     signed,
		Subject:   identity,
		ExpiresAt: expiresAt,
	}, nil
}

// Validate checks algorithm, signature, issuer and expiry, and returns the subject.
func (c *jwtCodec) Validate(tokenString string) (string, error) {
	if tokenString == "" {
		return "", service.ErrInvalidToken
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(c.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil || !token.Valid || claims.Subject == "" {
		return "", service.ErrInvalidToken
	}

	return claims.Subject, nil
}
