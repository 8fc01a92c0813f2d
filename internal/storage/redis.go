package storage

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache fronts two read-heavy paths: manager token validation on the
// tracking interceptor and the computed analytics summary.
type RedisCache struct {
	Client     *redis.Client
	TokenTTL   time.Duration
	SummaryTTL time.Duration
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{
		Client:     client,
		TokenTTL:   time.Hour,
		SummaryTTL: time.Minute,
	}
}

func (c *RedisCache) tokenKey(key string) string {
	return "auth:token:" + key
}

// GetCachedToken returns the manager id for a token key, or false on a miss.
func (c *RedisCache) GetCachedToken(ctx context.Context, key string) (int, bool) {
	raw, err := c.Client.Get(ctx, c.tokenKey(key)).Result()
	if err != nil {
		return 0, false
	}
	managerID, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return managerID, true
}

func (c *RedisCache) CacheToken(ctx context.Context, key string, managerID int) error {
	return c.Client.Set(ctx, c.tokenKey(key), strconv.Itoa(managerID), c.TokenTTL).Err()
}

func (c *RedisCache) DropToken(ctx context.Context, key string) error {
	return c.Client.Del(ctx, c.tokenKey(key)).Err()
}

func (c *RedisCache) summaryKey(windowDays int) string {
	return "analytics:summary:" + strconv.Itoa(windowDays)
}

// GetSummary returns the cached serialized summary for a window, if any.
func (c *RedisCache) GetSummary(ctx context.Context, windowDays int) ([]byte, bool) {
	raw, err := c.Client.Get(ctx, c.summaryKey(windowDays)).Bytes()
	if err != nil {
		return nil, false
	}
	return raw, true
}

func (c *RedisCache) SetSummary(ctx context.Context, windowDays int, payload []byte) error {
	return c.Client.Set(ctx, c.summaryKey(windowDays), payload, c.SummaryTTL).Err()
}
