package repository

import (
	"context"

	"containerview/internal/domain/entity"
)

// AuditEventRepository stores the authentication audit trail.
type AuditEventRepository interface {
	// Record stores the event unless one with the same EventID exists.
	// It reports whether a row was inserted.
	Record(ctx context.Context, event *entity.AuditEvent) (bool, error)
}
