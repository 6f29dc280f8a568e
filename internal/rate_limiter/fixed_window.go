package ratelimiter

import (
	"sync"
	"time"

	"github.com/pavelmamonov20/furnitura/internal/config"
	"go.uber.org/zap"
)

// FixedWindowRateLimiter counts requests per client within a fixed time
// frame. When the frame for a client expires its counter resets.
type FixedWindowRateLimiter struct {
	sync.RWMutex
	clients map[string]int
	limit   int
	window  time.Duration
	logger  *zap.SugaredLogger
}

func NewFixedWindowLimiter(cfg config.RateLimiterConfig, logger *zap.SugaredLogger) *FixedWindowRateLimiter {
	return &FixedWindowRateLimiter{
		clients: make(map[string]int),
		limit:   cfg.RequestsPerTimeFrame,
		window:  cfg.TimeFrame,
		logger:  logger,
	}
}

// Allow reports whether the client may perform another request, and if
// not, how long until its window resets at the earliest.
func (rl *FixedWindowRateLimiter) Allow(clientID string) (bool, time.Duration) {
	rl.RLock()
	count, exists := rl.clients[clientID]
	rl.RUnlock()

	if !exists || count < rl.limit {
		rl.Lock()
		if !exists {
			// First request of this window; schedule the reset.
			time.AfterFunc(rl.window, func() {
				rl.resetCount(clientID)
			})
		}
		rl.clients[clientID]++
		rl.Unlock()

		return true, 0
	}

	rl.logger.Debugf("Rate limit exceeded for client %s", clientID)
	return false, rl.window
}

func (rl *FixedWindowRateLimiter) resetCount(clientID string) {
	rl.Lock()
	delete(rl.clients, clientID)
	rl.Unlock()
}
