package site

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"idfgen/cache"
	"idfgen/model"
)

// Cached wraps a Resolver with a read-through cache keyed by address.
// A cache miss falls through to the underlying resolver; a resolver
// error is never cached.
type Cached struct {
	inner  Resolver
	cache  cache.Cache
	ttl    time.Duration
	logger *zap.Logger
}

// NewCached builds a cached resolver in front of inner.
func NewCached(inner Resolver, c cache.Cache, ttl time.Duration, logger *zap.Logger) *Cached {
	return &Cached{inner: inner, cache: c, ttl: ttl, logger: logger}
}

// Resolve returns the cached Site for address if present, else
// resolves via inner and populates the cache.
func (c *Cached) Resolve(ctx context.Context, address string) (model.Site, error) {
	key := "site:" + address
	if raw, found, err := c.cache.Get(ctx, key); err == nil && found {
		var site model.Site
		if jsonErr := json.Unmarshal(raw, &site); jsonErr == nil {
			return site, nil
		}
	}

	site, err := c.inner.Resolve(ctx, address)
	if err != nil {
		return model.Site{}, err
	}

	if raw, err := json.Marshal(site); err == nil {
		if err := c.cache.Set(ctx, key, raw, c.ttl); err != nil {
			c.logger.Warn("site cache populate failed", zap.String("address", address), zap.Error(err))
		}
	}
	return site, nil
}
