package schedule

import (
	"context"

	"github.com/glossbook/scheduling-service/internal/domain"
)

// WindowRepository интерфейс репозитория окон доступности
type WindowRepository interface {
	ListAll(ctx context.Context) ([]*domain.AvailabilityWindow, error)
	ReplaceAll(ctx context.Context, windows []*domain.AvailabilityWindow) ([]*domain.AvailabilityWindow, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
