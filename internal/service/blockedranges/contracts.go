package blockedranges

import (
	"context"
	"time"

	"github.com/glossbook/scheduling-service/internal/domain"
	"github.com/glossbook/scheduling-service/internal/infra/events"
)

// BlockedRangeRepository интерфейс репозитория блокировок
type BlockedRangeRepository interface {
	ListByPeriod(ctx context.Context, from, to time.Time) ([]*domain.BlockedRange, error)
	Delete(ctx context.Context, id int64) (time.Time, error)
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
