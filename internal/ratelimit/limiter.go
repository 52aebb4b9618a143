// Package ratelimit provides the sliding-window limiter guarding the
// contact endpoint. The limiter is an explicit component owned by its
// caller rather than package-level state, so tests get a fresh window.
package ratelimit

import (
	"sync"
	"time"
)

// Limiter allows at most max acquisitions per window.
type Limiter struct {
	mu     sync.Mutex
	max    int
	window time.Duration
	now    func() time.Time
	hits   []time.Time
}

// New creates a limiter allowing max acquisitions per window.
func New(max int, window time.Duration) *Limiter {
	return &Limiter{max: max, window: window, now: time.Now}
}

// NewWithClock creates a limiter with an injected clock.
func NewWithClock(max int, window time.Duration, clock func() time.Time) *Limiter {
	return &Limiter{max: max, window: window, now: clock}
}

// TryAcquire records an attempt and reports whether it is allowed.
func (l *Limiter) TryAcquire() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-l.window)

	kept := l.hits[:0]
	for _, t := range l.hits {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	l.hits = kept

	if len(l.hits) >= l.max {
		return false
	}
	l.hits = append(l.hits, now)
	return true
}
