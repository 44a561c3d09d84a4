package worker_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/venue-booking-portal/internal/worker"
)

type blockingWorker struct {
	*worker.BaseWorker
	started atomic.Bool
}

func newBlockingWorker(name string) *blockingWorker {
	return &blockingWorker{BaseWorker: worker.NewBaseWorker(name, zap.NewNop())}
}

func (w *blockingWorker) Start(ctx context.Context) error {
	w.started.Store(true)
	select {
	case <-ctx.Done():
	case <-w.StopChan():
	}
	return nil
}

func TestManager_StartWithoutWorkers(t *testing.T) {
	m := worker.NewManager(zap.NewNop())
	assert.Error(t, m.Start(context.Background()))
}

func TestManager_StartStop(t *testing.T) {
	m := worker.NewManager(zap.NewNop())
	a := newBlockingWorker("a")
	b := newBlockingWorker("b")
	m.Register(a)
	m.Register(b)
	assert.Equal(t, 2, m.Len())

	require.NoError(t, m.Start(context.Background()))
	assert.Eventually(t, func() bool {
		return a.started.Load() && b.started.Load()
	}, time.Second, 10*time.Millisecond)

	require.NoError(t, m.Stop())
	assert.True(t, a.IsStopped())
	assert.True(t, b.IsStopped())
}

func TestBaseWorker_StopIsIdempotent(t *testing.T) {
	w := worker.NewBaseWorker("w", zap.NewNop())
	assert.Equal(t, "w", w.Name())
	assert.False(t, w.IsStopped())

	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop())
	assert.True(t, w.IsStopped())
}
