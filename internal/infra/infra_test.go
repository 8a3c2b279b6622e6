package infra

import (
	"context"
	"testing"
	"time"
)

// ── Cache ──

func TestCacheGetSet(t *testing.T) {
	c := NewCache[int](time.Minute)
	c.Set("a", 1)
	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Errorf("Get(a): got %v, %v; want 1, true", v, ok)
	}
	if _, ok := c.Get("b"); ok {
		t.Error("Get(b): expected miss")
	}
}

func TestCacheExpiry(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewCache[string](time.Minute).WithClock(func() time.Time { return now })
	c.Set("k", "v")

	now = now.Add(2 * time.Minute)
	if _, ok := c.Get("k"); ok {
		t.Error("expected expired entry to miss")
	}
	c.Cleanup()
	if c.Len() != 0 {
		t.Errorf("Len after Cleanup: got %d, want 0", c.Len())
	}
}

func TestCacheInvalidateAndFlush(t *testing.T) {
	c := NewCache[int](time.Minute)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Invalidate("a")
	if _, ok := c.Get("a"); ok {
		t.Error("Invalidate: expected miss")
	}
	c.Flush()
	if c.Len() != 0 {
		t.Errorf("Flush: got %d entries, want 0", c.Len())
	}
}

// ── RateLimiter ──

func TestRateLimiterAllow(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(2, time.Second)
	rl.now = func() time.Time { return now }
	rl.lastRefill = now

	if !rl.Allow() || !rl.Allow() {
		t.Fatal("first two requests should pass")
	}
	if rl.Allow() {
		t.Error("third request should be limited")
	}
	now = now.Add(time.Second)
	if !rl.Allow() {
		t.Error("request after refill should pass")
	}
}

func TestRateLimiterWaitCancelled(t *testing.T) {
	rl := NewRateLimiter(1, time.Hour)
	rl.Allow()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := rl.Wait(ctx); err != context.Canceled {
		t.Errorf("Wait: got %v, want context.Canceled", err)
	}
}
