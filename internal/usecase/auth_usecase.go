// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"containerview/internal/domain/entity"
)

// StatusAuthenticated marks a completed second factor verification.
const StatusAuthenticated = "authenticated"

// Second factor methods, used as log, metric and event labels.
const (
	MethodEmail = "email"
	MethodTOTP  = "totp"
)

// --- Input DTOs ---

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Identity string
	Secret   string
	RemoteIP string
}

// VerifyInput defines the data required to complete a pending login.
type VerifyInput struct {
	StepUpToken string
	Code        string
	RemoteIP    string
}

// --- Output DTOs ---

// LoginOutput carries a session token when the second factor is off and a
// step-up token when it is on.
type LoginOutput struct {
	Identity            string
	SecondFactorEnabled bool
	Token               string
	ExpiresAt           time.Time
}

// VerifyOutput carries the session token issued after the second factor.
type VerifyOutput struct {
	Identity  string
	Token     string
	ExpiresAt time.Time
	Status    string
}

// CredentialVerifier checks a primary credential against the stored record.
type CredentialVerifier interface {
	// Verify returns the credential record when the secret matches.
	// Unknown identities and wrong secrets fail identically.
	Verify(ctx context.Context, identity, secret string) (*entity.User, error)
}

// AuthUsecase drives the login and step-up verification flow.
type AuthUsecase interface {
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	Verify(ctx context.Context, input *VerifyInput) (*VerifyOutput, error)
	VerifyTOTP(ctx context.Context, input *VerifyInput) (*VerifyOutput, error)
}
