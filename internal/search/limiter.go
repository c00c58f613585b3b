package search

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter enforces two ceilings on outbound search calls: a per-second
// token bucket and a per-day counter. The day window follows the local
// wall-clock date, and the counter lives in memory only, so a restart
// resets it.
type Limiter struct {
	perSecond *rate.Limiter

	mu       sync.Mutex
	dayLimit int
	dayCount int
	day      string // "2006-01-02" of the current window

	now func() time.Time
}

// NewLimiter creates a limiter allowing perSecond calls per second and
// perDay calls per calendar day.
func NewLimiter(perSecond, perDay int) *Limiter {
	return &Limiter{
		perSecond: rate.NewLimiter(rate.Limit(perSecond), perSecond),
		dayLimit:  perDay,
		now:       time.Now,
	}
}

// Allow reports whether one more search call may go out now. A call it
// admits is counted against the daily ceiling.
func (l *Limiter) Allow() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	today := l.now().Format("2006-01-02")
	if today != l.day {
		l.day = today
		l.dayCount = 0
	}
	if l.dayCount >= l.dayLimit {
		return false
	}
	if !l.perSecond.Allow() {
		return false
	}
	l.dayCount++
	return true
}

// Remaining returns how many calls are left in today's window.
func (l *Limiter) Remaining() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.now().Format("2006-01-02") != l.day {
		return l.dayLimit
	}
	return l.dayLimit - l.dayCount
}
