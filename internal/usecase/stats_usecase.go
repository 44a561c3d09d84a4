package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/venue-booking-portal/internal/domain"
	"github.com/venue-booking-portal/internal/domain/repository"
	"github.com/venue-booking-portal/internal/pkg/telemetry"
)

// StatsUseCase обрабатывает бизнес-логику для статистики
type StatsUseCase struct {
	venueRepo   repository.VenueRepository
	bookingRepo repository.BookingRepository
	cacheRepo   repository.CacheRepository
	cacheTTL    time.Duration
	logger      *zap.Logger
	now         func() time.Time
}

// NewStatsUseCase создает новый экземпляр StatsUseCase
func NewStatsUseCase(
	venueRepo repository.VenueRepository,
	bookingRepo repository.BookingRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *StatsUseCase {
	return &StatsUseCase{
		venueRepo:   venueRepo,
		bookingRepo: bookingRepo,
		cacheRepo:   cacheRepo,
		cacheTTL:    cacheTTL,
		logger:      logger,
		now:         time.Now,
	}
}

// GetStatistics возвращает статистику, используя кеш когда возможно
func (uc *StatsUseCase) GetStatistics(ctx context.Context) (*domain.CatalogStatistics, error) {
	ctx, span := telemetry.StartSpan(ctx, "stats.get")
	defer span.End()

	// 1. Проверяем кеш
	cached, err := uc.cacheRepo.GetStats(ctx)
	if err == nil && cached != nil {
		uc.logger.Debug("Statistics fetched from cache")
		return cached, nil
	}

	if err != nil {
		uc.logger.Warn("Failed to get stats from cache", zap.Error(err))
	}

	// 2. Считаем по каталогу
	stats := uc.compute()

	// 3. Кешируем
	if err := uc.cacheRepo.SetStats(ctx, stats, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache stats", zap.Error(err))
		// Не возвращаем ошибку, т.к. данные уже получены
	} else {
		uc.logger.Debug("Statistics cached successfully", zap.Duration("ttl", uc.cacheTTL))
	}

	return stats, nil
}

// RefreshStatistics принудительно обновляет статистику
func (uc *StatsUseCase) RefreshStatistics(ctx context.Context) (*domain.CatalogStatistics, error) {
	ctx, span := telemetry.StartSpan(ctx, "stats.refresh")
	defer span.End()

	uc.logger.Info("Refreshing statistics")

	stats := uc.compute()
	if err := uc.cacheRepo.SetStats(ctx, stats, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache refreshed stats", zap.Error(err))
	}

	uc.logger.Info("Statistics refreshed successfully")
	return stats, nil
}

func (uc *StatsUseCase) compute() *domain.CatalogStatistics {
	stats := &domain.CatalogStatistics{
		ByFacilityType:   make(map[domain.FacilityType]int),
		ByCapacityBucket: make(map[domain.CapacityBucket]int),
		BookingsByStatus: make(map[domain.BookingStatus]int),
		LastUpdated:      uc.now().UTC(),
	}

	for _, site := range uc.venueRepo.ListVenueSites() {
		stats.TotalSites++
		stats.TotalCapacity += domain.TotalSiteCapacity(site)
		for _, f := range site.Facilities {
			stats.TotalFacilities++
			if f.Indoor {
				stats.IndoorFacilities++
			} else {
				stats.OutdoorFacilities++
			}
			stats.ByFacilityType[f.Type]++

			maxCapacity := domain.MaxCapacity(f.Capacity)
			for _, bucket := range domain.ValidCapacityBuckets() {
				if bucket.Contains(maxCapacity) {
					stats.ByCapacityBucket[bucket]++
					break
				}
			}
		}
	}

	for _, b := range uc.bookingRepo.List() {
		stats.TotalBookings++
		stats.BookingsByStatus[b.Status]++
	}

	return stats
}
