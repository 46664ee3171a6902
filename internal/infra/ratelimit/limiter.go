package ratelimit

import (
	"sync"
	"time"

	"containerview/config"
	"containerview/internal/domain/service"

	"golang.org/x/time/rate"
)

// defaultMaxEntries bounds the tracked keys; new keys are refused once it is reached.
const defaultMaxEntries = 100_000

type bucket struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// multiLimiter keeps one token bucket per key and forgets keys idle for longer than ttl.
type multiLimiter struct {
	mu        sync.Mutex
	limit     rate.Limit
	burst     int
	ttl       time.Duration
	entries   map[string]*bucket
	maxKeys   int
	lastSweep time.Time
	now       func() time.Time
}

// NewAttemptLimiter budgets authentication attempts per identity.
func NewAttemptLimiter(cfg *config.Config) service.AttemptLimiter {
	limits := config.AttemptLimitConfig{}
	if cfg.Auth != nil {
		limits = cfg.Auth.AttemptLimit
	}

	limit := rate.Inf
	if limits.PerMinute > 0 {
		limit = rate.Limit(limits.PerMinute / time.Minute.Seconds())
	}

	return newMultiLimiter(limit, limits.Burst, limits.IdleTTL, time.Now)
}

func newMultiLimiter(limit rate.Limit, burst int, ttl time.Duration, now func() time.Time) *multiLimiter {
	if burst <= 0 {
		burst = 1
	}
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}

	return &multiLimiter{
		limit:   limit,
		burst:   burst,
		ttl:     ttl,
		entries: make(map[string]*bucket),
		maxKeys: defaultMaxEntries,
		now:     now,
	}
}

func (m *multiLimiter) Allow(key string) bool {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	m.sweep(now)

	b := m.entries[key]
	if b == nil {
		if len(m.entries) >= m.maxKeys {
			// Full: drop idle keys now, and refuse the new key if that frees nothing.
			m.evictIdle(now)
			if len(m.entries) >= m.maxKeys {
				return false
			}
		}
		b = &bucket{lim: rate.NewLimiter(m.limit, m.burst)}
		m.entries[key] = b
	}
	b.lastSeen = now

	return b.lim.AllowN(now, 1)
}

func (m *multiLimiter) Reset(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, key)
}

// sweep must be called with mu held. It runs at most once per ttl.
func (m *multiLimiter) sweep(now time.Time) {
	if now.Sub(m.lastSweep) < m.ttl {
		return
	}
	m.lastSweep = now
	m.evictIdle(now)
}

// evictIdle must be called with mu held.
func (m *multiLimiter) evictIdle(now time.Time) {
	for k, v := range m.entries {
		if now.Sub(v.lastSeen) > m.ttl {
			delete(m.entries, k)
		}
	}
}

func (m *multiLimiter) size() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.entries)
}
