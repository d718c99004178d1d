package cache

import (
	"context"

	"safe-rescue/safe-common/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// NewRedisClient builds a client from RedisConfig
func NewRedisClient(cfg *config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// Ping checks the connection
func Ping(ctx context.Context, client *redis.Client) error {
	return client.Ping(ctx).Err()
}

// OpenKV returns a Redis-backed KV when Redis is enabled and reachable, otherwise an
// in-process one. The returned close func is always safe to call.
func OpenKV(ctx context.Context, cfg *config.RedisConfig, logger *zap.Logger) (KV, func() error) {
	if !cfg.Enabled {
		return NewMemoryKV(), func() error { return nil }
	}
	client := NewRedisClient(cfg)
	if err := Ping(ctx, client); err != nil {
		logger.Warn("redis unreachable, using in-memory cache", zap.String("addr", cfg.Addr), zap.Error(err))
		_ = client.Close()
		return NewMemoryKV(), func() error { return nil }
	}
	return NewRedisKV(client), client.Close
}
