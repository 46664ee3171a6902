package model

import "time"

// AuditEventModel mirrors the 'auth_events' table.
type AuditEventModel struct {
	EventID    string    `gorm:"column:event_id;type:varchar(64);primaryKey"`
	Type       string    `gorm:"type:varchar(64);index:idx_auth_events_type;not null"`
	Identity   string    `gorm:"column:tax_id;type:varchar(14);index:idx_auth_events_tax_id_occurred_at,priority:1"`
	Method     string    `gorm:"type:varchar(16)"`
	RemoteIP   string    `gorm:"column:remote_ip;type:varchar(64)"`
	RequestID  string    `gorm:"type:varchar(128)"`
	MessageID  string    `gorm:"type:varchar(128)"`
	OccurredAt time.Time `gorm:"index:idx_auth_events_tax_id_occurred_at,priority:2;not null"`
	ReceivedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (AuditEventModel) TableName() string {
	return "auth_events"
}
