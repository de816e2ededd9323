package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"clipfund/internal/core/domain"
	"clipfund/internal/core/port"
)

// metricsStore is the subset of the redis client the cache uses.
type metricsStore interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// Cache is a read-through Redis decorator around a MetadataSource. Cache
// failures are logged and fall through to the inner source, so a Redis
// outage only costs latency. Degraded stubs are never cached: the next
// intake should retry the real sources.
type Cache struct {
	inner  port.MetadataSource
	rdb    metricsStore
	ttl    time.Duration
	logger *slog.Logger
}

// NewCache wraps inner with a Redis cache using the given TTL.
func NewCache(inner port.MetadataSource, rdb metricsStore, ttl time.Duration, logger *slog.Logger) *Cache {
	return &Cache{inner: inner, rdb: rdb, ttl: ttl, logger: logger}
}

func cacheKey(platform, contentID string) string {
	return fmt.Sprintf("metrics:%s:%s", platform, contentID)
}

// Fetch returns cached metrics when present, otherwise consults the inner
// source and stores live results.
func (c *Cache) Fetch(ctx context.Context, platform, contentID string) (domain.ClipMetrics, error) {
	key := cacheKey(platform, contentID)
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err == nil {
		var m domain.ClipMetrics
		if json.Unmarshal(raw, &m) == nil {
			return m, nil
		}
	} else if err != redis.Nil {
		c.logger.Warn("metrics cache read failed", slog.Any("error", err))
	}

	m, err := c.inner.Fetch(ctx, platform, contentID)
	if err != nil {
		return m, err
	}
	if m.Origin == domain.MetricsOriginLive {
		if raw, err := json.Marshal(m); err == nil {
			if err = c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
				c.logger.Warn("metrics cache write failed", slog.Any("error", err))
			}
		}
	}
	return m, nil
}
