// Package ratelimit caps how many successful lead submissions a single
// visitor can make per rolling window, keyed by client IP and by email.
package ratelimit

import (
	"sync"
	"time"
)

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	Limit           int
	Window          time.Duration
	CleanupInterval time.Duration
}

// DefaultConfig allows three successful submissions per rolling hour.
func DefaultConfig() *Config {
	return &Config{
		Enabled:         true,
		Limit:           3,
		Window:          time.Hour,
		CleanupInterval: 10 * time.Minute,
	}
}

// Info contains information about rate limit status.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

// Limiter tracks successful submission timestamps per key. Unlike a token
// bucket it only counts completed submissions: rejected or failed requests
// never consume quota, so Allow and Record are separate calls.
type Limiter struct {
	mu      sync.Mutex
	config  *Config
	history map[string][]time.Time

	cleanupTicker *time.Ticker
	cleanupStop   chan struct{}

	now func() time.Time // stubbed in tests
}

// NewLimiter creates a limiter with the given configuration. Pass nil for
// defaults.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = DefaultConfig()
	}

	limiter := &Limiter{
		config:  config,
		history: make(map[string][]time.Time),
		now:     time.Now,
	}

	if config.Enabled && config.CleanupInterval > 0 {
		limiter.cleanupTicker = time.NewTicker(config.CleanupInterval)
		limiter.cleanupStop = make(chan struct{})
		go limiter.cleanup()
	}

	return limiter
}

// Allow reports whether a submission under any of the given keys is still
// within quota. It consumes nothing; call Record once the submission
// actually succeeds.
func (l *Limiter) Allow(keys ...string) (bool, Info) {
	if !l.config.Enabled {
		return true, Info{Allowed: true}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	info := Info{Allowed: true, Limit: l.config.Limit, Remaining: l.config.Limit}

	for _, key := range keys {
		if key == "" {
			continue
		}
		recent := l.prune(key, now)
		remaining := l.config.Limit - len(recent)
		if remaining < info.Remaining {
			info.Remaining = remaining
		}
		if len(recent) >= l.config.Limit {
			info.Allowed = false
			info.Remaining = 0
			retryAfter := recent[0].Add(l.config.Window).Sub(now)
			if retryAfter > info.RetryAfter {
				info.RetryAfter = retryAfter
			}
		}
	}

	return info.Allowed, info
}

// Record counts one successful submission against each key.
func (l *Limiter) Record(keys ...string) {
	if !l.config.Enabled {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for _, key := range keys {
		if key == "" {
			continue
		}
		l.history[key] = append(l.prune(key, now), now)
	}
}

// prune drops timestamps older than the window. Caller holds l.mu.
func (l *Limiter) prune(key string, now time.Time) []time.Time {
	cutoff := now.Add(-l.config.Window)
	recent := l.history[key][:0]
	for _, ts := range l.history[key] {
		if ts.After(cutoff) {
			recent = append(recent, ts)
		}
	}
	if len(recent) == 0 {
		delete(l.history, key)
		return nil
	}
	l.history[key] = recent
	return recent
}

// cleanup periodically drops keys whose entire history has aged out.
func (l *Limiter) cleanup() {
	for {
		select {
		case <-l.cleanupTicker.C:
			l.mu.Lock()
			now := l.now()
			for key := range l.history {
				l.prune(key, now)
			}
			l.mu.Unlock()
		case <-l.cleanupStop:
			return
		}
	}
}

// Stop stops the cleanup goroutine.
func (l *Limiter) Stop() {
	if l.cleanupTicker != nil {
		l.cleanupTicker.Stop()
	}
	if l.cleanupStop != nil {
		close(l.cleanupStop)
	}
}
