package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Defaults mirror the limiter on the auth routes: 5 attempts per 15 minutes.
const (
	defaultLimit  = 5
	defaultWindow = 15 * time.Minute
)

// RateLimiter provides fixed-window request counting backed by Redis.
// Key format: ratelimit:<scope>:<ip>
type RateLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

// NewRateLimiter creates a RateLimiter wrapping the given Redis client.
// Non-positive limit/window fall back to the defaults.
func NewRateLimiter(client *redis.Client, limit int64, window time.Duration) *RateLimiter {
	if limit <= 0 {
		limit = defaultLimit
	}
	if window <= 0 {
		window = defaultWindow
	}
	return &RateLimiter{client: client, limit: limit, window: window}
}

// Allow counts one attempt for ip within scope and reports whether it is
// still inside the window's budget. The expiry is set when the window opens;
// subsequent attempts only increment.
func (l *RateLimiter) Allow(ctx context.Context, scope, ip string) (bool, error) {
	key := l.key(scope, ip)

	n, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("ratelimit incr: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return false, fmt.Errorf("ratelimit expire: %w", err)
		}
	}
	return n <= l.limit, nil
}

func (l *RateLimiter) key(scope, ip string) string {
	return fmt.Sprintf("ratelimit:%s:%s", scope, ip)
}
