package entity

import (
	"time"

	"github.com/google/uuid"
)

// VerificationCode is the single active one-time code of an identity.
type VerificationCode struct {
	ID        uuid.UUID
	TaxID     string
	Code      string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired reports whether the code can no longer be consumed at now.
func (c *VerificationCode) IsExpired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}
