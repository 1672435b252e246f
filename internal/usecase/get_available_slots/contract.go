package get_available_slots

import (
	"context"
	"time"

	"github.com/glossbook/scheduling-service/internal/domain"
)

// BookingRepository интерфейс репозитория записей
type BookingRepository interface {
	GetByServiceDate(ctx context.Context, serviceID int64, date time.Time, activeOnly bool) ([]*domain.Booking, error)
}

// WindowRepository интерфейс репозитория окон доступности
type WindowRepository interface {
	ListByDay(ctx context.Context, dayOfWeek int) ([]*domain.AvailabilityWindow, error)
}

// BlockedRangeRepository интерфейс репозитория блокировок
type BlockedRangeRepository interface {
	ListByDate(ctx context.Context, date time.Time) ([]*domain.BlockedRange, error)
}

// ServiceRepository интерфейс репозитория каталога услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
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
