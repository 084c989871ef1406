package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

// RateLimiter throttles an action per client key. With Redis configured it
// uses a SetNX lock window shared across instances; without it, a per-key
// in-process limiter with the same window.
type RateLimiter struct {
	rdb    *redis.Client
	action string
	window time.Duration

	mu    sync.Mutex
	local map[string]*rate.Limiter
}

func NewRateLimiter(rdb *redis.Client, action string, window time.Duration) *RateLimiter {
	return &RateLimiter{
		rdb:    rdb,
		action: action,
		window: window,
		local:  make(map[string]*rate.Limiter),
	}
}

// Allow reports whether key may perform the action now.
func (l *RateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	if l == nil || l.window <= 0 {
		return true, nil
	}

	if l.rdb != nil {
		redisKey := fmt.Sprintf("rate_limit:%s:%s", l.action, key)
		wasSet, err := l.rdb.SetNX(ctx, redisKey, "locked", l.window).Result()
		if err != nil {
			return false, fmt.Errorf("failed to check rate limit in redis: %w", err)
		}
		return wasSet, nil
	}

	l.mu.Lock()
	limiter, ok := l.local[key]
	if !ok {
		limiter = rate.NewLimiter(rate.Every(l.window), 1)
		l.local[key] = limiter
	}
	l.mu.Unlock()

	return limiter.Allow(), nil
}
