// Package ratelimit provides the shared admission gate that keeps the
// aggregate request rate below the host's anti-automation threshold.
// The gate is global across workers: concurrency must never multiply the
// effective fetch rate.
package ratelimit

import (
	"errors"
	"sync/atomic"
	"time"
)

var ErrNonPositiveRate = errors.New("ratelimit: requests per second must be positive")

// Limiter enforces a minimum interval between admissions across all
// callers. The only shared state is the last-admission timestamp, updated
// with compare-and-swap so admission serializes without serializing the
// callers' remaining work.
type Limiter struct {
	interval time.Duration
	last     atomic.Int64 // nanoseconds since epoch, 0 = never admitted
}

// New creates a limiter admitting at most rate requests per second.
func New(rate float64) (*Limiter, error) {
	if rate <= 0 {
		return nil, ErrNonPositiveRate
	}
	return &Limiter{interval: time.Duration(float64(time.Second) / rate)}, nil
}

// Acquire blocks until at least one interval has elapsed since the last
// admission, then claims the admission slot.
func (l *Limiter) Acquire() {
	for {
		now := time.Now().UnixNano()
		last := l.last.Load()

		if last > 0 {
			if wait := l.interval - time.Duration(now-last); wait > 0 {
				time.Sleep(wait)
				continue
			}
		}
		if l.last.CompareAndSwap(last, time.Now().UnixNano()) {
			return
		}
		// Another worker was admitted first; re-read and wait again.
	}
}

// TryAcquire reports whether an admission slot is immediately available
// and claims it if so. A raced claim fails rather than double-admitting.
func (l *Limiter) TryAcquire() bool {
	now := time.Now().UnixNano()
	last := l.last.Load()

	if last > 0 && time.Duration(now-last) < l.interval {
		return false
	}
	return l.last.CompareAndSwap(last, now)
}

// Rate returns the configured admissions per second.
func (l *Limiter) Rate() float64 {
	return float64(time.Second) / float64(l.interval)
}

// Interval returns the minimum spacing between admissions.
func (l *Limiter) Interval() time.Duration {
	return l.interval
}

// Reset clears the last-admission timestamp, e.g. when starting a fresh
// session.
func (l *Limiter) Reset() {
	l.last.Store(0)
}
