package ratelimit

import (
	"sync"
	"testing"
	"time"

	"containerview/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

func newTestLimiter(perMinute float64, burst int, ttl time.Duration) (*multiLimiter, *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}

	return newMultiLimiter(rate.Limit(perMinute/60), burst, ttl, clock.Now), clock
}

func TestMultiLimiter_BurstThenRefill(t *testing.T) {
	limiter, clock := newTestLimiter(1, 2, time.Hour)

	assert.True(t, limiter.Allow("12345678901"))
	assert.True(t, limiter.Allow("12345678901"))
	assert.False(t, limiter.Allow("12345678901"))

	clock.Advance(time.Minute)
	assert.True(t, limiter.Allow("12345678901"))
	assert.False(t, limiter.Allow("12345678901"))
}

func TestMultiLimiter_KeysAreIndependent(t *testing.T) {
	limiter, _ := newTestLimiter(1, 1, time.Hour)

	assert.True(t, limiter.Allow("a"))
	assert.False(t, limiter.Allow("a"))
	assert.True(t, limiter.Allow("b"))
}

func TestMultiLimiter_ResetRestoresBudget(t *testing.T) {
	limiter, _ := newTestLimiter(1, 1, time.Hour)

	assert.True(t, limiter.Allow("a"))
	assert.False(t, limiter.Allow("a"))

	limiter.Reset("a")
	assert.True(t, limiter.Allow("a"))
}

func TestMultiLimiter_EvictsIdleKeys(t *testing.T) {
	limiter, clock := newTestLimiter(1, 1, time.Minute)

	limiter.Allow("a")
	limiter.Allow("b")
	require.Equal(t, 2, limiter.size())

	clock.Advance(2 * time.Minute)
	limiter.Allow("c")

	assert.Equal(t, 1, limiter.size())
}

func TestNewAttemptLimiter_ZeroRateMeansUnlimited(t *testing.T) {
	limiter := NewAttemptLimiter(&config.Config{})

	for range 100 {
		require.True(t, limiter.Allow("a"))
	}
}

func TestNewAttemptLimiter_FromConfig(t *testing.T) {
	limiter := NewAttemptLimiter(&config.Config{Auth: &config.AuthConfig{
		AttemptLimit: config.AttemptLimitConfig{PerMinute: 10, Burst: 3, IdleTTL: time.Minute},
	}})

	allowed := 0
	for range 10 {
		if limiter.Allow("a") {
			allowed++
		}
	}
	assert.Equal(t, 3, allowed)
}

func TestMultiLimiter_ConcurrentAccess(t *testing.T) {
	limiter, _ := newTestLimiter(1, 50, time.Hour)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if limiter.Allow("shared") {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, allowed)
}

func TestMultiLimiter_RefusesNewKeysWhenFull(t *testing.T) {
	limiter, clock := newTestLimiter(1, 1, time.Minute)
	limiter.maxKeys = 2

	assert.True(t, limiter.Allow("12345678901"))
	assert.True(t, limiter.Allow("12345678902"))
	assert.False(t, limiter.Allow("12345678903"))
	assert.Equal(t, 2, limiter.size())

	// Known keys keep their own budget.
	clock.Advance(30 * time.Second)
	assert.False(t, limiter.Allow("12345678901"))

	// Once the first keys idle out there is room again.
	clock.Advance(2 * time.Minute)
	assert.True(t, limiter.Allow("12345678903"))
	assert.Equal(t, 1, limiter.size())
}
