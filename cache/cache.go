// Package cache provides a Redis-backed read-through cache in front of
// the external SiteResolver (see site.Cached), so a portfolio batch
// run doesn't repeat an expensive
// geocoding call for the same address. It is never the source of
// truth for determinism: the seed hash and emitted IDF depend only on
// the resolved Site/BuildingParameters, never on whether a cache hit
// occurred.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"idfgen/config"
)

// Cache is the minimal contract the pipeline needs: Get/Set of
// opaque byte values under a namespaced key.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// RedisCache implements Cache over a single Redis instance.
type RedisCache struct {
	client    *redis.Client
	logger    *zap.Logger
	keyPrefix string
	ttl       time.Duration
}

// NewRedisCache dials Redis per cfg and verifies connectivity.
func NewRedisCache(cfg *config.RedisConfig, logger *zap.Logger) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.Database,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		PoolSize:     cfg.PoolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("cache: redis connect: %w", err)
	}

	logger.Info("redis cache initialized", zap.String("address", cfg.Host))
	return &RedisCache{client: client, logger: logger, keyPrefix: "idfgen:", ttl: cfg.TTL}, nil
}

// Get returns the value stored under key; the bool is false on a
// cache miss.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	v, err := c.client.Get(ctx, c.keyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		c.logger.Warn("cache get failed", zap.String("key", key), zap.Error(err))
		return nil, false, err
	}
	return v, true, nil
}

// Set stores value under key with ttl, or the cache's default TTL
// when ttl is zero.
func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl == 0 {
		ttl = c.ttl
	}
	if err := c.client.Set(ctx, c.keyPrefix+key, value, ttl).Err(); err != nil {
		c.logger.Warn("cache set failed", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}

// Close releases the underlying connection pool.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// GetJSON is a convenience wrapper that unmarshals a cached value into
// dst, reporting (found, error).
func GetJSON(ctx context.Context, c Cache, key string, dst interface{}) (bool, error) {
	raw, found, err := c.Get(ctx, key)
	if err != nil || !found {
		return found, err
	}
	return true, json.Unmarshal(raw, dst)
}

// SetJSON marshals value and stores it under key.
func SetJSON(ctx context.Context, c Cache, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.Set(ctx, key, raw, ttl)
}
