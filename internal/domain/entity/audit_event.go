package entity

import "time"

// AuditEvent is a stored authentication event. EventID is assigned by the
// publisher and makes redelivered messages idempotent.
type AuditEvent struct {
	EventID    string
	Type       string
	Identity   string
	Method     string
	RemoteIP   string
	RequestID  string
	MessageID  string
	OccurredAt time.Time
	ReceivedAt time.Time
}
