package stats_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/venue-booking-portal/internal/domain"
	"github.com/venue-booking-portal/internal/worker/stats"
)

type countingRefresher struct {
	calls atomic.Int32
	err   error
}

func (r *countingRefresher) RefreshStatistics(ctx context.Context) (*domain.CatalogStatistics, error) {
	r.calls.Add(1)
	if r.err != nil {
		return nil, r.err
	}
	return &domain.CatalogStatistics{TotalSites: 6}, nil
}

func TestRefreshWorker_RefreshesImmediatelyAndPeriodically(t *testing.T) {
	refresher := &countingRefresher{}
	w := stats.NewRefreshWorker(refresher, 10*time.Millisecond, zap.NewNop())
	assert.Equal(t, stats.WorkerName, w.Name())

	done := make(chan error, 1)
	go func() { done <- w.Start(context.Background()) }()

	assert.Eventually(t, func() bool { return refresher.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)

	require.NoError(t, w.Stop())
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}

func TestRefreshWorker_ErrorsDoNotStopWorker(t *testing.T) {
	refresher := &countingRefresher{err: errors.New("cache down")}
	w := stats.NewRefreshWorker(refresher, 10*time.Millisecond, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	assert.Eventually(t, func() bool { return refresher.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("worker did not exit on cancel")
	}
}
