package cache_test

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/venue-booking-portal/internal/domain"
	"github.com/venue-booking-portal/internal/repository/cache"
)

const statsKey = "venue-portal:stats:catalog"

func setupCacheRepository() (*cache.Redis, redismock.ClientMock) {
	db, mock := redismock.NewClientMock()
	return cache.NewRedisFromClient(db, zap.NewNop()), mock
}

func TestCacheRepository_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("hit", func(t *testing.T) {
		r, mock := setupCacheRepository()
		repo := cache.NewCacheRepository(r)

		mock.ExpectGet("key").SetVal("value")

		val, err := repo.Get(ctx, "key")
		require.NoError(t, err)
		assert.Equal(t, []byte("value"), val)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("miss returns nil without error", func(t *testing.T) {
		r, mock := setupCacheRepository()
		repo := cache.NewCacheRepository(r)

		mock.ExpectGet("key").RedisNil()

		val, err := repo.Get(ctx, "key")
		require.NoError(t, err)
		assert.Nil(t, val)
	})

	t.Run("redis error", func(t *testing.T) {
		r, mock := setupCacheRepository()
		repo := cache.NewCacheRepository(r)

		mock.ExpectGet("key").SetErr(stderrors.New("connection refused"))

		_, err := repo.Get(ctx, "key")
		assert.Error(t, err)
	})
}

func TestCacheRepository_SetAndDelete(t *testing.T) {
	ctx := context.Background()
	r, mock := setupCacheRepository()
	repo := cache.NewCacheRepository(r)

	mock.ExpectSet("key", []byte("value"), time.Minute).SetVal("OK")
	mock.ExpectDel("key").SetVal(1)

	require.NoError(t, repo.Set(ctx, "key", []byte("value"), time.Minute))
	require.NoError(t, repo.Delete(ctx, "key"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCacheRepository_Stats(t *testing.T) {
	ctx := context.Background()
	stats := &domain.CatalogStatistics{
		TotalSites:      6,
		TotalFacilities: 12,
		ByFacilityType:  map[domain.FacilityType]int{domain.FacilityTypeTheatre: 2},
		LastUpdated:     time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	data, err := json.Marshal(stats)
	require.NoError(t, err)

	t.Run("set", func(t *testing.T) {
		r, mock := setupCacheRepository()
		repo := cache.NewCacheRepository(r)

		mock.ExpectSet(statsKey, data, time.Hour).SetVal("OK")

		require.NoError(t, repo.SetStats(ctx, stats, time.Hour))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("get hit", func(t *testing.T) {
		r, mock := setupCacheRepository()
		repo := cache.NewCacheRepository(r)

		mock.ExpectGet(statsKey).SetVal(string(data))

		got, err := repo.GetStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, 6, got.TotalSites)
		assert.Equal(t, 2, got.ByFacilityType[domain.FacilityTypeTheatre])
	})

	t.Run("get miss", func(t *testing.T) {
		r, mock := setupCacheRepository()
		repo := cache.NewCacheRepository(r)

		mock.ExpectGet(statsKey).RedisNil()

		got, err := repo.GetStats(ctx)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("corrupted payload", func(t *testing.T) {
		r, mock := setupCacheRepository()
		repo := cache.NewCacheRepository(r)

		mock.ExpectGet(statsKey).SetVal("{not json")

		_, err := repo.GetStats(ctx)
		assert.Error(t, err)
	})
}
