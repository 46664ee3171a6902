package service

// Outcome labels shared by the auth metrics.
const (
	OutcomeSuccess   = "success"
	OutcomeFailure   = "failure"
	OutcomeStepUp    = "step_up"
	OutcomeThrottled = "throttled"
)

// AuthMetrics records authentication outcomes.
type AuthMetrics interface {
	LoginAttempt(outcome string)
	VerificationAttempt(method, outcome string)
	CodeIssued()
	CodeDeliveryFailed()
	CodesPurged(count int64)
}
