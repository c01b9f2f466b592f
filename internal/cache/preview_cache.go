package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// PreviewCache stores rendered crawler documents keyed by the normalized
// path segment. It is strictly best-effort: any redis failure reads as a
// miss and writes are fire-and-forget, so the preview path keeps working
// when redis is down.
type PreviewCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func NewPreviewCache(client redis.UniversalClient, ttl time.Duration) *PreviewCache {
	return &PreviewCache{client: client, ttl: ttl}
}

func (c *PreviewCache) Get(ctx context.Context, key string) (string, bool) {
	if c == nil || c.client == nil {
		return "", false
	}
	val, err := c.client.Get(ctx, "preview:"+key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (c *PreviewCache) Set(ctx context.Context, key, html string) {
	if c == nil || c.client == nil {
		return
	}
	_ = c.client.Set(ctx, "preview:"+key, html, c.ttl).Err()
}
