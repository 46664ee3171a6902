package impl

import (
	"context"
	"log/slog"
	"time"

	"containerview/internal/domain/entity"
	"containerview/internal/domain/repository"
	"containerview/internal/domain/service"
	"containerview/internal/errors"
	"containerview/internal/usecase"

	"go.uber.org/fx"
)

type auditService struct {
	auditRepo repository.AuditEventRepository
	now       func() time.Time
	logger    *slog.Logger
}

// AuditServiceParams holds dependencies for AuditService, injected by Fx.
type AuditServiceParams struct {
	fx.In

	AuditRepo repository.AuditEventRepository
	Logger    *slog.Logger
}

// NewAuditService builds the audit trail writer used by the worker.
func NewAuditService(params AuditServiceParams) usecase.AuditUsecase {
	return &auditService{
		auditRepo: params.AuditRepo,
		now:       time.Now,
		logger:    params.Logger,
	}
}

func (srv *auditService) Record(ctx context.Context, event *service.AuthEvent, messageID string) error {
	if event.EventID == "" {
		return errors.Wrap(usecase.ErrInvalidAuditEvent, "missing event_id")
	}
	if !event.Type.IsValid() {
		return errors.Wrapf(usecase.ErrInvalidAuditEvent, "unknown event type %q", event.Type)
	}

	received := srv.now()
	occurred := event.OccurredAt
	if occurred.IsZero() {
		occurred = received
	}

	inserted, err := srv.auditRepo.Record(ctx, &entity.AuditEvent{
		EventID:    event.EventID,
		Type:       string(event.Type),
		Identity:   event.Identity,
		Method:     event.Method,
		RemoteIP:   event.RemoteIP,
		RequestID:  event.RequestID,
		MessageID:  messageID,
		OccurredAt: occurred,
		ReceivedAt: received,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if !inserted {
		srv.logger.InfoContext(ctx, "Duplicate auth event ignored",
			slog.String("event_id", event.EventID),
			slog.String("message_id", messageID),
		)
	}

	return nil
}
