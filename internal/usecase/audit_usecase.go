package usecase

import (
	"context"

	"containerview/internal/domain/service"
	"containerview/internal/errors"
)

// ErrInvalidAuditEvent marks an event that can never be stored; redelivery will not help.
var ErrInvalidAuditEvent = errors.New("invalid audit event")

// AuditUsecase persists authentication events consumed from the event stream.
type AuditUsecase interface {
	// Record stores the event once. Redelivered events are acknowledged without a second row.
	Record(ctx context.Context, event *service.AuthEvent, messageID string) error
}
