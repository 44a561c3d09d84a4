package cache

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/venue-booking-portal/internal/domain"
	"github.com/venue-booking-portal/internal/domain/repository"
	"github.com/venue-booking-portal/internal/pkg/metrics"
)

const (
	keyPrefix = "venue-portal:"
	statsKey  = keyPrefix + "stats:catalog"
)

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if stderrors.Is(err, redis.Nil) {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

// GetStats получает статистику каталога из кеша
func (r *cacheRepository) GetStats(ctx context.Context) (*domain.CatalogStatistics, error) {
	return getStats(ctx, r, r.logger)
}

// SetStats сохраняет статистику каталога в кеше
func (r *cacheRepository) SetStats(ctx context.Context, stats *domain.CatalogStatistics, ttl time.Duration) error {
	return setStats(ctx, r, stats, ttl, r.logger)
}

// getStats/setStats общие для redis и in-memory реализаций
func getStats(ctx context.Context, c repository.CacheRepository, logger *zap.Logger) (*domain.CatalogStatistics, error) {
	data, err := c.Get(ctx, statsKey)
	if err != nil {
		return nil, err
	}
	metrics.RecordCacheLookup("stats", data != nil)
	if data == nil {
		return nil, nil // Cache miss
	}

	var stats domain.CatalogStatistics
	if err := json.Unmarshal(data, &stats); err != nil {
		logger.Error("Failed to unmarshal stats from cache", zap.Error(err))
		return nil, fmt.Errorf("unmarshal stats: %w", err)
	}

	return &stats, nil
}

func setStats(ctx context.Context, c repository.CacheRepository, stats *domain.CatalogStatistics, ttl time.Duration, logger *zap.Logger) error {
	data, err := json.Marshal(stats)
	if err != nil {
		logger.Error("Failed to marshal stats", zap.Error(err))
		return fmt.Errorf("marshal stats: %w", err)
	}

	return c.Set(ctx, statsKey, data, ttl)
}
