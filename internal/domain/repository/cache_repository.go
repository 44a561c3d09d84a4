package repository

import (
	"context"
	"time"

	"github.com/venue-booking-portal/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу, промах - (nil, nil)
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// GetStats получает статистику каталога из кеша
	GetStats(ctx context.Context) (*domain.CatalogStatistics, error)

	// SetStats сохраняет статистику каталога в кеше
	SetStats(ctx context.Context, stats *domain.CatalogStatistics, ttl time.Duration) error
}
