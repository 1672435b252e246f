package domain

import (
	"iter"
	"time"

	"github.com/glossbook/scheduling-service/pkg/types"
)

// SlotStatus состояние кандидата-слота
type SlotStatus string

const (
	// SlotFree слот свободен для бронирования
	SlotFree SlotStatus = "free"

	// SlotTaken слот пересекается с активной записью
	SlotTaken SlotStatus = "taken"

	// SlotBlocked слот не помещается целиком ни в один открытый интервал
	// (перекрыт блокировкой оператора или хвостом окна)
	SlotBlocked SlotStatus = "blocked"
)

// TimeSlot дискретный кандидат на время начала записи
// Вычисляется на лету и никогда не сохраняется
type TimeSlot struct {
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          SlotStatus
}

// IsBookable returns true if the slot can be offered to a customer
func (s TimeSlot) IsBookable() bool {
	return s.Status == SlotFree
}

// GenerateSlots генерирует кандидатов-слотов по окнам доступности дня
//
// Кандидаты идут с шагом granularity от начала каждого окна; генерация в окне
// останавливается, как только конец кандидата выходит за конец окна. Статус:
//   - SlotBlocked - кандидат не лежит целиком внутри одного открытого интервала
//   - SlotTaken   - кандидат пересекается с активной записью
//   - SlotFree    - иначе
//
// Возвращает ленивую конечную последовательность в хронологическом порядке.
// Последовательность перезапускаема: повторная итерация по тем же входным
// данным даёт тот же результат, скрытого состояния нет
func GenerateSlots(
	date time.Time,
	windows []Interval,
	open []Interval,
	serviceDurationMinutes int,
	granularityMinutes int,
	bookings []*Booking,
) iter.Seq[TimeSlot] {
	return func(yield func(TimeSlot) bool) {
		if serviceDurationMinutes <= 0 || granularityMinutes <= 0 {
			return
		}

		for _, window := range windows {
			start := window.Start
			for {
				end, err := start.AddMinutes(serviceDurationMinutes)
				if err != nil || window.End.IsBefore(end) {
					break
				}

				candidate := Interval{Start: start, End: end}
				slot := TimeSlot{
					Date:            date,
					StartTime:       start,
					DurationMinutes: serviceDurationMinutes,
					Status:          classifySlot(candidate, open, bookings),
				}
				if !yield(slot) {
					return
				}

				next, err := start.AddMinutes(granularityMinutes)
				if err != nil {
					break
				}
				start = next
			}
		}
	}
}

// classifySlot определяет статус кандидата относительно открытых интервалов
// и существующих записей
func classifySlot(candidate Interval, open []Interval, bookings []*Booking) SlotStatus {
	contained := false
	for _, o := range open {
		if o.Contains(candidate) {
			contained = true
			break
		}
	}
	if !contained {
		return SlotBlocked
	}

	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}
		interval, err := booking.Interval()
		if err != nil {
			continue
		}
		if Overlaps(candidate, interval) {
			return SlotTaken
		}
	}

	return SlotFree
}
