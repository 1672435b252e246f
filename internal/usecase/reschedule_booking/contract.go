package reschedule_booking

import (
	"context"
	"time"

	"github.com/glossbook/scheduling-service/internal/domain"
	"github.com/glossbook/scheduling-service/internal/infra/events"
	"github.com/glossbook/scheduling-service/internal/integrations/notifier"
)

// BookingRepository интерфейс репозитория записей
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByServiceDate(ctx context.Context, serviceID int64, date time.Time, activeOnly bool) ([]*domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking) error
}

// WindowRepository интерфейс репозитория окон доступности
type WindowRepository interface {
	ListByDay(ctx context.Context, dayOfWeek int) ([]*domain.AvailabilityWindow, error)
}

// BlockedRangeRepository интерфейс репозитория блокировок
type BlockedRangeRepository interface {
	ListByDate(ctx context.Context, date time.Time) ([]*domain.BlockedRange, error)
}

// TxManager интерфейс для управления транзакциями
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier интерфейс клиента сервиса уведомлений
type Notifier interface {
	SendQuietly(ctx context.Context, event *notifier.BookingEvent)
}

// EventPublisher интерфейс публикации событий изменения расписания
type EventPublisher interface {
	Publish(ctx context.Context, event events.ChangeEvent)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
