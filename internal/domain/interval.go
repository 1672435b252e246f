package domain

import "github.com/glossbook/scheduling-service/pkg/types"

// Interval полуоткрытый интервал времени [Start, End) внутри одного дня
type Interval struct {
	Start types.TimeString
	End   types.TimeString
}

// IsValid проверяет, что начало интервала строго раньше конца
func (i Interval) IsValid() bool {
	return i.Start.IsBefore(i.End)
}

// Contains проверяет, что other целиком лежит внутри интервала
func (i Interval) Contains(other Interval) bool {
	return !other.Start.IsBefore(i.Start) && !i.End.IsBefore(other.End)
}

// Overlaps проверяет пересечение двух полуоткрытых интервалов одного дня
// Строгие неравенства: граничащие интервалы (конец одного равен началу другого)
// пересечением не считаются
func Overlaps(a, b Interval) bool {
	return a.Start.IsBefore(b.End) && b.Start.IsBefore(a.End)
}

// Subtract вычитает blocked из window и возвращает 0, 1 или 2 оставшихся подынтервала
//
// Примеры:
//   - window 09:00-17:00, blocked 12:00-13:00 → [09:00-12:00, 13:00-17:00]
//   - window 09:00-17:00, blocked 08:00-10:00 → [10:00-17:00]
//   - window 09:00-17:00, blocked 08:00-18:00 → []
//   - window 09:00-17:00, blocked 18:00-19:00 → [09:00-17:00]
func Subtract(window, blocked Interval) []Interval {
	if !Overlaps(window, blocked) {
		return []Interval{window}
	}

	result := make([]Interval, 0, 2)

	if window.Start.IsBefore(blocked.Start) {
		result = append(result, Interval{Start: window.Start, End: blocked.Start})
	}
	if blocked.End.IsBefore(window.End) {
		result = append(result, Interval{Start: blocked.End, End: window.End})
	}

	return result
}
