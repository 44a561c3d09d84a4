package cache

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/venue-booking-portal/internal/domain"
	"github.com/venue-booking-portal/internal/domain/repository"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// memoryCacheRepository - кеш в памяти процесса, когда Redis выключен
type memoryCacheRepository struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
	logger  *zap.Logger
}

func NewMemoryCacheRepository(logger *zap.Logger) repository.CacheRepository {
	return newMemoryCacheRepository(logger, time.Now)
}

func newMemoryCacheRepository(logger *zap.Logger, now func() time.Time) *memoryCacheRepository {
	return &memoryCacheRepository{
		entries: make(map[string]memoryEntry),
		now:     now,
		logger:  logger,
	}
}

func (r *memoryCacheRepository) Get(_ context.Context, key string) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[key]
	if !ok {
		return nil, nil
	}
	if !entry.expiresAt.IsZero() && !r.now().Before(entry.expiresAt) {
		delete(r.entries, key)
		return nil, nil
	}
	return entry.value, nil
}

func (r *memoryCacheRepository) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry := memoryEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = r.now().Add(ttl)
	}
	r.entries[key] = entry
	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *memoryCacheRepository) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, key)
	return nil
}

func (r *memoryCacheRepository) GetStats(ctx context.Context) (*domain.CatalogStatistics, error) {
	return getStats(ctx, r, r.logger)
}

func (r *memoryCacheRepository) SetStats(ctx context.Context, stats *domain.CatalogStatistics, ttl time.Duration) error {
	return setStats(ctx, r, stats, ttl, r.logger)
}
