package reschedule_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда запись не найдена
	ErrBookingNotFound = errors.New("reschedule_booking: booking not found")

	// ErrAccessDenied возвращается при попытке переноса чужой записи
	ErrAccessDenied = errors.New("reschedule_booking: access denied")

	// ErrInvalidState возвращается при переносе записи не в статусе confirmed
	ErrInvalidState = errors.New("reschedule_booking: booking cannot be rescheduled in its current state")

	// ErrSlotUnavailable возвращается, когда новый слот не попадает в открытые интервалы
	ErrSlotUnavailable = errors.New("reschedule_booking: slot is unavailable")

	// ErrSlotConflict возвращается, когда новый слот пересекается с активной записью
	ErrSlotConflict = errors.New("reschedule_booking: slot conflicts with existing booking")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reschedule_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule_booking: internal error")
)
