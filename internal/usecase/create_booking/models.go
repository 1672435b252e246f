package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/glossbook/scheduling-service/internal/domain"
	"github.com/glossbook/scheduling-service/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	UserID        int64            // ID пользователя, создающего запись
	ServiceID     int64            // ID услуги
	ScheduledDate time.Time        // Дата записи (без времени)
	StartTime     types.TimeString // Время начала слота (HH:MM)
	CustomerName  string           // Имя клиента
	CustomerEmail string           // Email клиента
	CustomerPhone *string          // Телефон клиента (опционально)
	Notes         *string          // Комментарий к записи (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID              int64
	PublicRef       uuid.UUID
	UserID          int64
	ServiceID       int64
	ServiceName     string
	ScheduledDate   time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          domain.BookingStatus
	Price           float64
	Paid            bool
	CreatedAt       time.Time
}

func newResponse(b *domain.Booking) *Response {
	return &Response{
		ID:              b.ID,
		PublicRef:       b.PublicRef,
		UserID:          b.UserID,
		ServiceID:       b.ServiceID,
		ServiceName:     b.ServiceName,
		ScheduledDate:   b.ScheduledDate,
		StartTime:       b.StartTime,
		DurationMinutes: b.DurationMinutes,
		Status:          b.Status,
		Price:           b.Price,
		Paid:            b.Paid,
		CreatedAt:       b.CreatedAt,
	}
}
