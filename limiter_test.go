package folio

import (
	"testing"
	"time"
)

func newFakeClockLimiter(max int, window time.Duration) (*RateLimiter, *time.Time) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l := NewRateLimiter(max, window)
	l.now = func() time.Time { return now }
	return l, &now
}

func TestRateLimiterBlocksAfterMax(t *testing.T) {
	l, _ := newFakeClockLimiter(2, time.Minute)
	ip := "203.0.113.10"

	if !l.Allow(ip) {
		t.Fatalf("expected first request to be allowed")
	}
	if !l.Allow(ip) {
		t.Fatalf("expected second request to be allowed")
	}
	if l.Allow(ip) {
		t.Fatalf("expected third request to be blocked")
	}
}

func TestRateLimiterResetsAfterWindow(t *testing.T) {
	l, now := newFakeClockLimiter(1, time.Minute)
	ip := "203.0.113.20"

	if !l.Allow(ip) {
		t.Fatalf("expected first request to be allowed")
	}
	if l.Allow(ip) {
		t.Fatalf("expected second request to be blocked")
	}
	*now = now.Add(61 * time.Second)
	if !l.Allow(ip) {
		t.Fatalf("expected request after window to be allowed")
	}
}

func TestRateLimiterIsPerKey(t *testing.T) {
	l, _ := newFakeClockLimiter(1, time.Minute)

	if !l.Allow("203.0.113.30") {
		t.Fatalf("expected first ip to be allowed")
	}
	if !l.Allow("203.0.113.31") {
		t.Fatalf("expected second ip to be allowed independently")
	}
	if l.Allow("203.0.113.30") {
		t.Fatalf("expected first ip to be blocked after max")
	}
}

func TestRateLimiterSweepsIdleKeys(t *testing.T) {
	l, now := newFakeClockLimiter(5, time.Minute)
	l.Allow("a")
	*now = now.Add(2 * time.Minute)
	l.Allow("b")
	if _, ok := l.hits["a"]; ok {
		t.Error("idle key was not swept")
	}
}
