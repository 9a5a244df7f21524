package slotcache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/glowbook/beauty-booking-backend/internal/availability"
)

// RedisCache caches generated slot grids in Redis with a short TTL. Every
// failure is logged and treated as a miss; the engine recomputes from the
// database.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func New(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisCache {
	return &RedisCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]availability.TimeSlot, bool) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("slot cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}

	var slots []availability.TimeSlot
	if err := json.Unmarshal(data, &slots); err != nil {
		c.logger.Warn("slot cache entry corrupt", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return slots, true
}

func (c *RedisCache) Set(ctx context.Context, key string, slots []availability.TimeSlot) {
	data, err := json.Marshal(slots)
	if err != nil {
		c.logger.Warn("slot cache encode failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("slot cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func (c *RedisCache) Invalidate(ctx context.Context, prefix string) {
	iter := c.client.Scan(ctx, 0, prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			c.logger.Warn("slot cache delete failed", zap.String("key", iter.Val()), zap.Error(err))
		}
	}
	if err := iter.Err(); err != nil {
		c.logger.Warn("slot cache scan failed", zap.String("prefix", prefix), zap.Error(err))
	}
}
