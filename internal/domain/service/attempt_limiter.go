package service

// AttemptLimiter throttles repeated authentication attempts per key.
type AttemptLimiter interface {
	// Allow consumes one attempt and reports whether it is within budget.
	Allow(key string) bool

	// Reset forgets the attempt history of the key.
	Reset(key string)
}
