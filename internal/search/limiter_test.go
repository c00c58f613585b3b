package search

import (
	"testing"
	"time"
)

func TestLimiterDailyCeiling(t *testing.T) {
	l := NewLimiter(100, 3)

	for i := 0; i < 3; i++ {
		if !l.Allow() {
			t.Fatalf("call %d should be admitted", i+1)
		}
	}
	if l.Allow() {
		t.Error("4th call of the day should be blocked")
	}
	if got := l.Remaining(); got != 0 {
		t.Errorf("Remaining() = %d, want 0", got)
	}
}

func TestLimiterDailyResetAtMidnight(t *testing.T) {
	l := NewLimiter(100, 1)

	current := time.Date(2024, 3, 15, 23, 59, 0, 0, time.Local)
	l.now = func() time.Time { return current }

	if !l.Allow() {
		t.Fatal("first call should be admitted")
	}
	if l.Allow() {
		t.Fatal("second call same day should be blocked")
	}

	// Crossing the date boundary resets the counter
	current = time.Date(2024, 3, 16, 0, 1, 0, 0, time.Local)
	if !l.Allow() {
		t.Error("call after midnight should be admitted")
	}
}

func TestLimiterPerSecondCeiling(t *testing.T) {
	l := NewLimiter(2, 1000)

	admitted := 0
	for i := 0; i < 10; i++ {
		if l.Allow() {
			admitted++
		}
	}
	// Burst capacity equals the per-second rate
	if admitted != 2 {
		t.Errorf("admitted %d calls in a burst, want 2", admitted)
	}
}

func TestLimiterRemainingFreshDay(t *testing.T) {
	l := NewLimiter(10, 50)
	if got := l.Remaining(); got != 50 {
		t.Errorf("Remaining() on fresh limiter = %d, want 50", got)
	}
	l.Allow()
	if got := l.Remaining(); got != 49 {
		t.Errorf("Remaining() after one call = %d, want 49", got)
	}
}
