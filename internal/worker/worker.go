package worker

import (
	"context"
)

// Worker - фоновая задача портала
type Worker interface {
	// Start блокируется до отмены ctx или Stop
	Start(ctx context.Context) error

	Stop() error

	Name() string
}
