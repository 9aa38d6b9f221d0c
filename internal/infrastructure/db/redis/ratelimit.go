package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// WindowCounter implements fixed-window request counting backed by Redis.
// Key format: ratelimit:<key>. The counter expires with the window, so a
// new window starts automatically on the first hit after expiry.
type WindowCounter struct {
	client *redis.Client
	window time.Duration
}

// NewWindowCounter creates a WindowCounter with the given window length.
func NewWindowCounter(client *redis.Client, window time.Duration) *WindowCounter {
	return &WindowCounter{client: client, window: window}
}

// Incr increments the counter for key and returns the count within the
// current window plus the time remaining until the window resets.
func (w *WindowCounter) Incr(ctx context.Context, key string) (int64, time.Duration, error) {
	k := "ratelimit:" + key

	pipe := w.client.TxPipeline()
	incr := pipe.Incr(ctx, k)
	pipe.ExpireNX(ctx, k, w.window)
	ttl := pipe.TTL(ctx, k)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, 0, fmt.Errorf("rate limit incr: %w", err)
	}

	remaining := ttl.Val()
	if remaining < 0 {
		remaining = w.window
	}
	return incr.Val(), remaining, nil
}
