package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/venue-booking-portal/internal/domain"
	"github.com/venue-booking-portal/internal/repository/memory"
	"github.com/venue-booking-portal/internal/usecase"
)

func TestStatsUseCase_GetStatistics(t *testing.T) {
	ctx := context.Background()
	ttl := 10 * time.Minute

	t.Run("cache hit", func(t *testing.T) {
		mockCache := &MockCacheRepository{}
		cached := &domain.CatalogStatistics{TotalSites: 42}
		mockCache.On("GetStats", mock.Anything).Return(cached, nil)

		uc := usecase.NewStatsUseCase(memory.NewVenueRepository(), memory.NewBookingRepository(), mockCache, zap.NewNop(), ttl)
		stats, err := uc.GetStatistics(ctx)

		require.NoError(t, err)
		assert.Equal(t, 42, stats.TotalSites)
		mockCache.AssertNotCalled(t, "SetStats", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("cache miss computes and caches", func(t *testing.T) {
		mockCache := &MockCacheRepository{}
		mockCache.On("GetStats", mock.Anything).Return(nil, nil)
		mockCache.On("SetStats", mock.Anything, mock.AnythingOfType("*domain.CatalogStatistics"), ttl).Return(nil)

		uc := usecase.NewStatsUseCase(memory.NewVenueRepository(), memory.NewBookingRepository(), mockCache, zap.NewNop(), ttl)
		stats, err := uc.GetStatistics(ctx)

		require.NoError(t, err)
		assert.Equal(t, 6, stats.TotalSites)
		assert.Equal(t, 12, stats.TotalFacilities)
		assert.Equal(t, 5, stats.IndoorFacilities)
		assert.Equal(t, 7, stats.OutdoorFacilities)
		assert.Equal(t, 15300, stats.TotalCapacity)
		assert.Equal(t, 2, stats.ByFacilityType[domain.FacilityTypeConferenceHall])
		assert.Equal(t, 6, stats.ByCapacityBucket[domain.CapacityBucketSmall])
		assert.Equal(t, 2, stats.ByCapacityBucket[domain.CapacityBucketXLarge])
		assert.Equal(t, 7, stats.TotalBookings)
		for _, status := range domain.ValidBookingStatuses() {
			assert.Equal(t, 1, stats.BookingsByStatus[status], status)
		}
		mockCache.AssertExpectations(t)
	})

	t.Run("cache errors are not fatal", func(t *testing.T) {
		mockCache := &MockCacheRepository{}
		mockCache.On("GetStats", mock.Anything).Return(nil, errors.New("redis down"))
		mockCache.On("SetStats", mock.Anything, mock.Anything, ttl).Return(errors.New("redis down"))

		uc := usecase.NewStatsUseCase(memory.NewVenueRepository(), memory.NewBookingRepository(), mockCache, zap.NewNop(), ttl)
		stats, err := uc.GetStatistics(ctx)

		require.NoError(t, err)
		assert.Equal(t, 6, stats.TotalSites)
	})
}

func TestStatsUseCase_RefreshStatistics(t *testing.T) {
	mockCache := &MockCacheRepository{}
	mockCache.On("SetStats", mock.Anything, mock.Anything, time.Hour).Return(nil)

	uc := usecase.NewStatsUseCase(memory.NewVenueRepository(), memory.NewBookingRepository(), mockCache, zap.NewNop(), time.Hour)
	stats, err := uc.RefreshStatistics(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 12, stats.TotalFacilities)
	mockCache.AssertNotCalled(t, "GetStats", mock.Anything)
	mockCache.AssertExpectations(t)
}
