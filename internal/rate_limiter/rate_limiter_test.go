package ratelimiter

import (
	"testing"
	"time"

	"github.com/sovanra/uxfolio/internal/config"
	"go.uber.org/zap"
)

func TestFixedWindowLimiter(t *testing.T) {
	rl := NewFixedWindowLimiter(config.RateLimiterConfig{
		RequestsPerTimeFrame: 2,
		TimeFrame:            time.Minute,
		Enabled:              true,
	}, zap.NewNop().Sugar())

	if ok, _ := rl.Allow("1.2.3.4"); !ok {
		t.Error("First request should be allowed")
	}
	if ok, _ := rl.Allow("1.2.3.4"); !ok {
		t.Error("Second request should be allowed")
	}
	ok, retry := rl.Allow("1.2.3.4")
	if ok {
		t.Error("Third request should be rejected")
	}
	if retry <= 0 {
		t.Errorf("Expected a positive retry-after, got %v", retry)
	}

	// Other clients have their own window.
	if ok, _ := rl.Allow("5.6.7.8"); !ok {
		t.Error("Different client should be allowed")
	}
}

func TestDisabledLimiterAllowsEverything(t *testing.T) {
	rl := NewFixedWindowLimiter(config.RateLimiterConfig{
		RequestsPerTimeFrame: 1,
		TimeFrame:            time.Minute,
		Enabled:              false,
	}, zap.NewNop().Sugar())

	for i := 0; i < 10; i++ {
		if ok, _ := rl.Allow("1.2.3.4"); !ok {
			t.Fatal("Disabled limiter must allow every request")
		}
	}
}

func TestWindowResets(t *testing.T) {
	rl := NewFixedWindowLimiter(config.RateLimiterConfig{
		RequestsPerTimeFrame: 1,
		TimeFrame:            10 * time.Millisecond,
		Enabled:              true,
	}, zap.NewNop().Sugar())

	if ok, _ := rl.Allow("1.2.3.4"); !ok {
		t.Error("First request should be allowed")
	}
	if ok, _ := rl.Allow("1.2.3.4"); ok {
		t.Error("Second request in window should be rejected")
	}

	time.Sleep(15 * time.Millisecond)

	if ok, _ := rl.Allow("1.2.3.4"); !ok {
		t.Error("Request after window reset should be allowed")
	}
}
