package service

import (
	"context"
	"time"
)

// AuthEventType names the outcome of an authentication step.
type AuthEventType string

const (
	AuthEventLoginSucceeded        AuthEventType = "login.succeeded"
	AuthEventLoginFailed           AuthEventType = "login.failed"
	AuthEventStepUpRequired        AuthEventType = "login.step_up_required"
	AuthEventCodeDeliveryFailed    AuthEventType = "code.delivery_failed"
	AuthEventVerificationSucceeded AuthEventType = "verification.succeeded"
	AuthEventVerificationFailed    AuthEventType = "verification.failed"
	AuthEventAttemptsThrottled     AuthEventType = "attempts.throttled"
)

// IsValid reports whether t is one of the published event types.
func (t AuthEventType) IsValid() bool {
	switch t {
	case AuthEventLoginSucceeded, AuthEventLoginFailed, AuthEventStepUpRequired,
		AuthEventCodeDeliveryFailed, AuthEventVerificationSucceeded,
		AuthEventVerificationFailed, AuthEventAttemptsThrottled:
		return true
	default:
		return false
	}
}

// AuthEvent is published for audit consumers after each authentication step
type AuthEvent struct {
	RequestID  string        `json:"request_id,omitempty"` // For distributed tracing
	EventID    string        `json:"event_id"`
	Type       AuthEventType `json:"type"`
	Identity   string        `json:"identity"`
	Method     string        `json:"method,omitempty"` // "email" or "totp" for verification events
	RemoteIP   string        `json:"remote_ip,omitempty"`
	OccurredAt time.Time     `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAuthEvent publishes an authentication event
	PublishAuthEvent(ctx context.Context, event *AuthEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
