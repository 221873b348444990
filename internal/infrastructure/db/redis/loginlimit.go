package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LoginLimiter throttles login attempts with a fixed window counter.
// Key format: login:attempts:<email>
type LoginLimiter struct {
	client *redis.Client
	max    int64
	window time.Duration
}

// NewLoginLimiter creates a limiter allowing max attempts per window.
func NewLoginLimiter(client *redis.Client, max int64, window time.Duration) *LoginLimiter {
	if max <= 0 {
		max = 10
	}
	if window <= 0 {
		window = time.Minute
	}
	return &LoginLimiter{client: client, max: max, window: window}
}

// Allow counts this attempt and reports whether it is within the window
// budget. The counter expires with the window, so a quiet period resets it.
func (l *LoginLimiter) Allow(ctx context.Context, email string) (bool, error) {
	key := l.key(email)
	n, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("count login attempt: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return false, fmt.Errorf("set attempt window: %w", err)
		}
	}
	return n <= l.max, nil
}

func (l *LoginLimiter) key(email string) string {
	return fmt.Sprintf("login:attempts:%s", email)
}
