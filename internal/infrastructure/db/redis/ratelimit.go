package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter implements a fixed-window request counter backed by Redis.
// Key format: ratelimit:<client>:<window_index>
type RateLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

// NewRateLimiter creates a limiter allowing limit requests per window.
func NewRateLimiter(client *redis.Client, limit int, window time.Duration) *RateLimiter {
	if limit <= 0 {
		limit = 300
	}
	if window <= 0 {
		window = time.Minute
	}
	return &RateLimiter{client: client, limit: int64(limit), window: window}
}

// Allow increments the counter of the client's current window and reports
// whether the request is within the limit. The window key expires on its own
// so idle clients carry no state.
func (l *RateLimiter) Allow(ctx context.Context, client string) (bool, error) {
	n, err := l.client.Incr(ctx, l.key(client)).Result()
	if err != nil {
		return false, fmt.Errorf("rate limit incr: %w", err)
	}
	if n == 1 {
		_ = l.client.Expire(ctx, l.key(client), l.window).Err()
	}
	return n <= l.limit, nil
}

func (l *RateLimiter) key(client string) string {
	windowIndex := time.Now().Unix() / int64(l.window.Seconds())
	return fmt.Sprintf("ratelimit:%s:%d", client, windowIndex)
}
