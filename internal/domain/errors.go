package domain

import "errors"

var (
	// ErrInvalidDateRange возвращается, когда конец диапазона дат раньше начала
	ErrInvalidDateRange = errors.New("domain: end date is before start date")

	// ErrInvalidInterval возвращается, когда начало интервала не раньше его конца
	ErrInvalidInterval = errors.New("domain: interval start must be before its end")

	// ErrSlotUnavailable возвращается, когда запрошенный интервал не попадает
	// ни в один открытый интервал дня (вне расписания или перекрыт блокировкой)
	ErrSlotUnavailable = errors.New("domain: slot is outside open intervals")

	// ErrSlotConflict возвращается, когда запрошенный интервал пересекается
	// с другой активной записью
	ErrSlotConflict = errors.New("domain: slot overlaps an active booking")

	// ErrInvalidTransition возвращается при недопустимом переходе статуса записи
	ErrInvalidTransition = errors.New("domain: invalid booking status transition")
)
