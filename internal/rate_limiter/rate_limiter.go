package ratelimiter

import (
	"sync"
	"time"

	"github.com/sovanra/uxfolio/internal/config"
	"github.com/sovanra/uxfolio/internal/util"
	"go.uber.org/zap"
)

func NewRateLimiter(cfg config.RateLimiterConfig, logger *zap.SugaredLogger) *FixedWindowRateLimiter {
	// For unit test
	if logger == nil {
		logger = util.NewLogger("")
	}

	return NewFixedWindowLimiter(cfg, logger)
}

// FixedWindowRateLimiter counts requests per client in fixed time windows.
// Counters reset when their window elapses.
type FixedWindowRateLimiter struct {
	cfg    config.RateLimiterConfig
	logger *zap.SugaredLogger

	mu      sync.Mutex
	windows map[string]*window
}

type window struct {
	count   int
	resetAt time.Time
}

func NewFixedWindowLimiter(cfg config.RateLimiterConfig, logger *zap.SugaredLogger) *FixedWindowRateLimiter {
	return &FixedWindowRateLimiter{
		cfg:     cfg,
		logger:  logger,
		windows: make(map[string]*window),
	}
}

// Allow reports whether the client identified by key may proceed, and how
// long to wait when it may not.
func (rl *FixedWindowRateLimiter) Allow(key string) (bool, time.Duration) {
	if !rl.cfg.Enabled {
		return true, 0
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	w, ok := rl.windows[key]
	if !ok || now.After(w.resetAt) {
		rl.windows[key] = &window{count: 1, resetAt: now.Add(rl.cfg.TimeFrame)}
		return true, 0
	}

	if w.count >= rl.cfg.RequestsPerTimeFrame {
		return false, time.Until(w.resetAt)
	}

	w.count++
	return true, 0
}
