package postgres

import (
	"context"

	"containerview/internal/domain/entity"
	domainerrors "containerview/internal/domain/errors"
	"containerview/internal/domain/repository"
	"containerview/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// auditEventRepository implements repository.AuditEventRepository.
type auditEventRepository struct {
	db *gorm.DB
}

// NewAuditEventRepository is the constructor for auditEventRepository.
func NewAuditEventRepository(db *gorm.DB) repository.AuditEventRepository {
	return &auditEventRepository{db: db}
}

// Record inserts the event and ignores duplicates of an already stored event_id.
func (repo *auditEventRepository) Record(ctx context.Context, event *entity.AuditEvent) (bool, error) {
	eventM := &model.AuditEventModel{
		EventID:    event.EventID,
		Type:       event.Type,
		Identity:   event.Identity,
		Method:     event.Method,
		RemoteIP:   event.RemoteIP,
		RequestID:  event.RequestID,
		MessageID:  event.MessageID,
		OccurredAt: event.OccurredAt,
		ReceivedAt: event.ReceivedAt,
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "event_id"}}, DoNothing: true}).
		Create(eventM)
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to record auth event")
	}

	return result.RowsAffected > 0, nil
}
