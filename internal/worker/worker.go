package worker

import (
	"context"
)

// Worker интерфейс для всех воркеров
type Worker interface {
	// Start блокирует до остановки воркера или отмены ctx
	Start(ctx context.Context) error

	// Stop останавливает воркер
	Stop() error

	Name() string
}
