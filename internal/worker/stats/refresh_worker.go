package stats

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/venue-booking-portal/internal/domain"
	"github.com/venue-booking-portal/internal/worker"
)

// WorkerName - имя воркера в логах
const WorkerName = "stats-refresh"

// Refresher пересчитывает статистику и кладёт её в кеш
type Refresher interface {
	RefreshStatistics(ctx context.Context) (*domain.CatalogStatistics, error)
}

// RefreshWorker держит кеш статистики каталога прогретым.
// Первый пересчёт выполняется сразу при старте.
type RefreshWorker struct {
	*worker.BaseWorker
	refresher Refresher
	interval  time.Duration
}

// NewRefreshWorker создает новый RefreshWorker
func NewRefreshWorker(refresher Refresher, interval time.Duration, logger *zap.Logger) *RefreshWorker {
	return &RefreshWorker{
		BaseWorker: worker.NewBaseWorker(WorkerName, logger),
		refresher:  refresher,
		interval:   interval,
	}
}

// Start блокируется до отмены ctx или Stop
func (w *RefreshWorker) Start(ctx context.Context) error {
	w.Logger().Info("Worker started", zap.Duration("interval", w.interval))

	w.refresh(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.Logger().Info("Context cancelled, worker exiting")
			return nil
		case <-w.StopChan():
			w.Logger().Info("Stop signal received, worker exiting")
			return nil
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *RefreshWorker) refresh(ctx context.Context) {
	stats, err := w.refresher.RefreshStatistics(ctx)
	if err != nil {
		w.Logger().Warn("Failed to refresh statistics", zap.Error(err))
		return
	}
	w.Logger().Debug("Statistics refreshed",
		zap.Int("sites", stats.TotalSites),
		zap.Int("bookings", stats.TotalBookings),
	)
}
