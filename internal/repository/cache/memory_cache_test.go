package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/venue-booking-portal/internal/domain"
)

func TestMemoryCacheRepository_Expiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	repo := newMemoryCacheRepository(zap.NewNop(), func() time.Time { return now })

	require.NoError(t, repo.Set(ctx, "key", []byte("value"), time.Minute))

	val, err := repo.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), val)

	now = now.Add(time.Minute)
	val, err = repo.Get(ctx, "key")
	require.NoError(t, err)
	assert.Nil(t, val)
}

func TestMemoryCacheRepository_Stats(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCacheRepository(zap.NewNop())

	got, err := repo.GetStats(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, repo.SetStats(ctx, &domain.CatalogStatistics{TotalSites: 3}, time.Hour))

	got, err = repo.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, got.TotalSites)

	require.NoError(t, repo.Delete(ctx, statsKey))
	got, err = repo.GetStats(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}
