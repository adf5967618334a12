package usecase

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/ecotravel-admin/internal/domain/repository"
)

// Cache key prefixes, one per resource. Mutations drop the whole prefix.
const (
	cachePrefixBookings   = "admin:bookings:"
	cachePrefixLocations  = "admin:locations:"
	cachePrefixTransports = "admin:transports:"
)

// listCache - JSON кеш списков поверх CacheRepository.
// Ошибки кеша только логируются, repo может быть nil.
type listCache struct {
	repo   repository.CacheRepository
	ttl    time.Duration
	logger *zap.Logger
}

func newListCache(repo repository.CacheRepository, ttl time.Duration, logger *zap.Logger) *listCache {
	return &listCache{repo: repo, ttl: ttl, logger: logger}
}

func (c *listCache) enabled() bool {
	return c != nil && c.repo != nil && c.ttl > 0
}

// get декодирует значение в dst, true - cache hit
func (c *listCache) get(ctx context.Context, key string, dst any) bool {
	if !c.enabled() {
		return false
	}
	data, err := c.repo.Get(ctx, key)
	if err != nil {
		c.logger.Warn("Cache get failed", zap.String("key", key), zap.Error(err))
		return false
	}
	if data == nil {
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		c.logger.Warn("Cached value is corrupted", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (c *listCache) set(ctx context.Context, key string, value any) {
	if !c.enabled() {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("Failed to marshal cache value", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.repo.Set(ctx, key, data, c.ttl); err != nil {
		c.logger.Warn("Cache set failed", zap.String("key", key), zap.Error(err))
	}
}

// invalidate выполняется и после отмены ctx: мутация на бэкенде уже прошла
func (c *listCache) invalidate(ctx context.Context, prefix string) {
	if c == nil || c.repo == nil {
		return
	}
	n, err := c.repo.DeleteByPrefix(context.WithoutCancel(ctx), prefix)
	if err != nil {
		c.logger.Warn("Cache invalidation failed", zap.String("prefix", prefix), zap.Error(err))
		return
	}
	c.logger.Debug("Cache invalidated", zap.String("prefix", prefix), zap.Int("keys", n))
}
