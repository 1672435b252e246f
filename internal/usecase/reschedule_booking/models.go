package reschedule_booking

import (
	"time"

	"github.com/glossbook/scheduling-service/internal/domain"
	"github.com/glossbook/scheduling-service/pkg/types"
)

// Request модель запроса на перенос записи
type Request struct {
	BookingID int64            // ID переносимой записи
	UserID    int64            // ID пользователя, запросившего перенос
	NewDate   time.Time        // Новая дата записи
	NewTime   types.TimeString // Новое время начала (HH:MM)
}

// Response модель ответа на перенос
//
// Outcome различает успешный перенос и автоотмену по исчерпанию лимита:
// оба исхода - это успешно обработанный запрос, а не ошибка
type Response struct {
	BookingID       int64
	Outcome         domain.RescheduleOutcome
	Status          domain.BookingStatus
	ScheduledDate   time.Time
	StartTime       types.TimeString
	RescheduleCount int
}

func newResponse(b *domain.Booking, outcome domain.RescheduleOutcome) *Response {
	return &Response{
		BookingID:       b.ID,
		Outcome:         outcome,
		Status:          b.Status,
		ScheduledDate:   b.ScheduledDate,
		StartTime:       b.StartTime,
		RescheduleCount: b.RescheduleCount,
	}
}
