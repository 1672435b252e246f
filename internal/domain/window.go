package domain

import (
	"fmt"
	"time"

	"github.com/glossbook/scheduling-service/pkg/types"
)

// AvailabilityWindow повторяющееся еженедельное окно доступности
// На один день недели может приходиться несколько окон (например, смены с перерывом)
type AvailabilityWindow struct {
	ID          int64
	DayOfWeek   int // 0-6, 0 = воскресенье (как time.Weekday)
	StartTime   types.TimeString
	EndTime     types.TimeString
	IsAvailable bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate проверяет корректность окна шаблона
func (w *AvailabilityWindow) Validate() error {
	if w.DayOfWeek < 0 || w.DayOfWeek > 6 {
		return fmt.Errorf("%w: day of week must be in range 0-6", ErrInvalidInterval)
	}
	if err := w.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid start time: %v", ErrInvalidInterval, err)
	}
	if err := w.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid end time: %v", ErrInvalidInterval, err)
	}
	if !w.StartTime.IsBefore(w.EndTime) {
		return fmt.Errorf("%w: start time must be before end time", ErrInvalidInterval)
	}
	return nil
}

// Interval возвращает интервал окна
func (w *AvailabilityWindow) Interval() Interval {
	return Interval{Start: w.StartTime, End: w.EndTime}
}

// AppliesTo проверяет, что окно действует в указанную дату
func (w *AvailabilityWindow) AppliesTo(date time.Time) bool {
	return w.IsAvailable && int(date.Weekday()) == w.DayOfWeek
}
