package block_time_range

import (
	"context"

	"github.com/glossbook/scheduling-service/internal/domain"
	"github.com/glossbook/scheduling-service/internal/infra/events"
)

// BlockedRangeRepository интерфейс репозитория блокировок
type BlockedRangeRepository interface {
	CreateBatch(ctx context.Context, ranges []*domain.BlockedRange) ([]*domain.BlockedRange, error)
}

// TxManager интерфейс для управления транзакциями
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher интерфейс публикации событий изменения расписания
type EventPublisher interface {
	Publish(ctx context.Context, event events.ChangeEvent)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
