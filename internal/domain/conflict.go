package domain

import (
	"fmt"

	"github.com/glossbook/scheduling-service/pkg/types"
)

// CheckSlot проверяет, что целевой интервал можно занять записью
//
// Это авторитетная проверка перед фиксацией создания или переноса записи.
// Она ОБЯЗАНА выполняться повторно в момент коммита, даже если вызывающая
// сторона уже показала слот свободным: данные шага выбора считаются
// устаревшими и не заслуживают доверия.
//
// excludeBookingID исключает запись из проверки конфликтов - при переносе
// запись не должна конфликтовать сама с собой; 0 означает "не исключать"
//
// Возвращает:
//   - ErrSlotUnavailable - интервал не лежит целиком в открытом интервале
//   - ErrSlotConflict    - интервал пересекается с другой активной записью
func CheckSlot(
	open []Interval,
	bookings []*Booking,
	startTime types.TimeString,
	durationMinutes int,
	excludeBookingID int64,
) error {
	endTime, err := startTime.AddMinutes(durationMinutes)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInterval, err)
	}
	target := Interval{Start: startTime, End: endTime}

	contained := false
	for _, o := range open {
		if o.Contains(target) {
			contained = true
			break
		}
	}
	if !contained {
		return fmt.Errorf("%w: %s-%s", ErrSlotUnavailable, target.Start, target.End)
	}

	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}
		if excludeBookingID != 0 && booking.ID == excludeBookingID {
			continue
		}

		interval, err := booking.Interval()
		if err != nil {
			continue
		}
		if Overlaps(target, interval) {
			return fmt.Errorf("%w: booking id=%d at %s-%s",
				ErrSlotConflict, booking.ID, interval.Start, interval.End)
		}
	}

	return nil
}
