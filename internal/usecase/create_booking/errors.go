package create_booking

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrServiceInactive возвращается, когда услуга выключена в каталоге
	ErrServiceInactive = errors.New("create_booking: service is inactive")

	// ErrSlotUnavailable возвращается, когда слот не попадает в открытые интервалы дня
	ErrSlotUnavailable = errors.New("create_booking: slot is unavailable")

	// ErrSlotConflict возвращается, когда слот пересекается с активной записью
	ErrSlotConflict = errors.New("create_booking: slot conflicts with existing booking")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
