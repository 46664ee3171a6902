package repository

import (
	"context"
	"time"

	"containerview/internal/domain/entity"
	"containerview/internal/errors"

	"github.com/google/uuid"
)

// ErrVerificationCodeNotFound is returned when an identity has no stored code.
var ErrVerificationCodeNotFound = errors.New("verification code not found")

// VerificationCodeRepository persists one-time codes keyed by identity.
type VerificationCodeRepository interface {
	// Create stores a new code.
	Create(ctx context.Context, code *entity.VerificationCode) error

	// FindLatestByTaxID returns the code with the latest expiry for the identity.
	FindLatestByTaxID(ctx context.Context, taxID string) (*entity.VerificationCode, error)

	// DeleteByTaxID removes every code of the identity.
	DeleteByTaxID(ctx context.Context, taxID string) (int64, error)

	// DeleteByID removes a single code.
	DeleteByID(ctx context.Context, id uuid.UUID) error

	// DeleteExpired removes every code that expired at or before now.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
