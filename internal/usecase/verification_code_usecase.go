package usecase

import (
	"context"

	"containerview/internal/domain/entity"
)

// VerificationCodeUsecase manages one-time codes. An identity has at most one
// active code; issuing a new one replaces the previous.
type VerificationCodeUsecase interface {
	Issue(ctx context.Context, identity string) (*entity.VerificationCode, error)
	// Verify consumes the code on a match. A mismatch keeps the stored code.
	Verify(ctx context.Context, identity, code string) (bool, error)
	// Revoke deletes the given code only, so a newer code of the identity survives.
	Revoke(ctx context.Context, code *entity.VerificationCode) error
	PurgeExpired(ctx context.Context) (int64, error)
}
