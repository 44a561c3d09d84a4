package worker

import (
	"sync"

	"go.uber.org/zap"
)

// BaseWorker - имя, логгер и однократная остановка, общие для периодических задач
type BaseWorker struct {
	name     string
	logger   *zap.Logger
	stopChan chan struct{}
	once     sync.Once
}

// NewBaseWorker создает новый BaseWorker
func NewBaseWorker(name string, logger *zap.Logger) *BaseWorker {
	return &BaseWorker{
		name:     name,
		logger:   logger.With(zap.String("worker", name)),
		stopChan: make(chan struct{}),
	}
}

func (w *BaseWorker) Name() string {
	return w.name
}

// Stop закрывает канал остановки, повторный вызов ничего не делает
func (w *BaseWorker) Stop() error {
	w.once.Do(func() {
		w.logger.Info("Stopping worker")
		close(w.stopChan)
	})
	return nil
}

// IsStopped reports whether Stop was called
func (w *BaseWorker) IsStopped() bool {
	select {
	case <-w.stopChan:
		return true
	default:
		return false
	}
}

func (w *BaseWorker) StopChan() <-chan struct{} {
	return w.stopChan
}

func (w *BaseWorker) Logger() *zap.Logger {
	return w.logger
}
