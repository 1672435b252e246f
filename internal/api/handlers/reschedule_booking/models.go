package reschedule_booking

import (
	"time"

	"github.com/glossbook/scheduling-service/internal/domain"
	rescheduleBooking "github.com/glossbook/scheduling-service/internal/usecase/reschedule_booking"
	"github.com/glossbook/scheduling-service/pkg/types"
)

// RescheduleBookingRequest HTTP request model
type RescheduleBookingRequest struct {
	NewDate string `json:"newDate"` // "2025-10-15"
	NewTime string `json:"newTime"` // "10:00"
}

// RescheduleBookingResponse HTTP response model
// outcome=auto_cancelled означает, что запись отменена из-за лимита переносов,
// клиентский UI обязан показать сообщение об отмене
type RescheduleBookingResponse struct {
	BookingID       int64  `json:"bookingId"`
	Outcome         string `json:"outcome"` // rescheduled, auto_cancelled
	Status          string `json:"status"`
	ScheduledDate   string `json:"scheduledDate"`
	StartTime       string `json:"startTime"`
	RescheduleCount int    `json:"rescheduleCount"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleBookingRequest) ToUseCaseRequest(bookingID, userID int64) (*rescheduleBooking.Request, error) {
	newDate, err := time.Parse(domain.DateFormat, r.NewDate)
	if err != nil {
		return nil, err
	}

	newTime, err := types.NewTimeStringFromString(r.NewTime)
	if err != nil {
		return nil, err
	}

	return &rescheduleBooking.Request{
		BookingID: bookingID,
		UserID:    userID,
		NewDate:   newDate,
		NewTime:   newTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *rescheduleBooking.Response) *RescheduleBookingResponse {
	return &RescheduleBookingResponse{
		BookingID:       resp.BookingID,
		Outcome:         string(resp.Outcome),
		Status:          string(resp.Status),
		ScheduledDate:   resp.ScheduledDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		RescheduleCount: resp.RescheduleCount,
	}
}
