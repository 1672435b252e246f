package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/glossbook/scheduling-service/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// RescheduleOutcome результат попытки переноса записи
type RescheduleOutcome string

const (
	// OutcomeRescheduled запись перенесена на новые дату и время
	OutcomeRescheduled RescheduleOutcome = "rescheduled"

	// OutcomeAutoCancelled запись отменена: лимит переносов исчерпан
	// Вызывающая сторона обязана показать отдельное сообщение об отмене,
	// а не предложение выбрать другое время
	OutcomeAutoCancelled RescheduleOutcome = "auto_cancelled"
)

// Booking represents a customer appointment in the system
type Booking struct {
	ID        int64
	PublicRef uuid.UUID // внешний идентификатор для клиентских ссылок и писем
	UserID    int64
	ServiceID int64

	ScheduledDate   time.Time
	StartTime       types.TimeString
	DurationMinutes int // копируется из услуги при создании, далее неизменен

	Status          BookingStatus
	RescheduleCount int
	Paid            bool
	Price           float64

	// Denormalized data for history
	ServiceName   string
	CustomerName  string
	CustomerEmail string
	CustomerPhone *string
	Notes         *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking occupies its slot
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// RescheduleLimitReached проверяет, что следующая попытка переноса
// приведёт к отмене записи вместо переноса
func (b *Booking) RescheduleLimitReached() bool {
	return b.RescheduleCount >= MaxReschedules
}

// Interval возвращает занимаемый записью интервал времени
func (b *Booking) Interval() (Interval, error) {
	end, err := b.StartTime.AddMinutes(b.DurationMinutes)
	if err != nil {
		return Interval{}, err
	}
	return Interval{Start: b.StartTime, End: end}, nil
}

// Confirm переводит запись из Pending в Confirmed (подтверждение оператором)
func (b *Booking) Confirm() error {
	if b.Status != StatusPending {
		return ErrInvalidTransition
	}
	b.Status = StatusConfirmed
	return nil
}

// Cancel отменяет запись с указанием причины
// Допустимо только для активных записей
func (b *Booking) Cancel(reason string, at time.Time) error {
	if !b.CanBeCancelled() {
		return ErrInvalidTransition
	}
	b.Status = StatusCancelled
	b.CancellationReason = &reason
	b.CancelledAt = &at
	return nil
}

// Complete переводит подтверждённую запись в Completed после прошедшего визита
func (b *Booking) Complete() error {
	if b.Status != StatusConfirmed {
		return ErrInvalidTransition
	}
	b.Status = StatusCompleted
	return nil
}

// Reschedule применяет перенос записи на новые дату и время
//
// Перенос определён только для подтверждённых записей. Счётчик переносов
// ограничен MaxReschedules: попытка сверх лимита НЕ переносит запись,
// а отменяет её и возвращает OutcomeAutoCancelled. Проверка конфликтов
// для нового слота выполняется вызывающей стороной ДО вызова Reschedule
// (при исчерпанном лимите новый слот не имеет значения - запись отменяется
// до любых проверок доступности)
func (b *Booking) Reschedule(newDate time.Time, newTime types.TimeString, at time.Time) (RescheduleOutcome, error) {
	if b.Status != StatusConfirmed {
		return "", ErrInvalidTransition
	}

	if b.RescheduleLimitReached() {
		reason := "reschedule limit exceeded"
		b.Status = StatusCancelled
		b.CancellationReason = &reason
		b.CancelledAt = &at
		return OutcomeAutoCancelled, nil
	}

	b.ScheduledDate = newDate
	b.StartTime = newTime
	b.RescheduleCount++
	return OutcomeRescheduled, nil
}
