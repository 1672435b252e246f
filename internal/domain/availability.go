package domain

import (
	"sort"
	"time"
)

// ResolveOpenIntervals вычисляет открытые (доступные для записи) интервалы даты
//
// Алгоритм:
//  1. Отбираются окна доступности, действующие в день недели даты
//  2. Если на дату есть блокировка на весь день - открытых интервалов нет
//  3. Из каждого окна последовательно вычитаются все частичные блокировки даты
//  4. Результат сортируется по времени начала; пересекающиеся или смежные
//     интервалы НЕ сливаются - каждое окно обрабатывается независимо
//
// Пустой результат - нормальный исход (выходной день или всё заблокировано),
// не ошибка
func ResolveOpenIntervals(windows []*AvailabilityWindow, blocked []*BlockedRange, date time.Time) []Interval {
	dayWindows := make([]Interval, 0, len(windows))
	for _, w := range windows {
		if w.AppliesTo(date) {
			dayWindows = append(dayWindows, w.Interval())
		}
	}
	if len(dayWindows) == 0 {
		return []Interval{}
	}

	// Блокировка на весь день перекрывает любое расписание
	partial := make([]Interval, 0, len(blocked))
	for _, b := range blocked {
		if b.AllDay {
			return []Interval{}
		}
		partial = append(partial, b.Interval())
	}

	open := make([]Interval, 0, len(dayWindows))
	for _, window := range dayWindows {
		remaining := []Interval{window}
		for _, blockedInterval := range partial {
			next := make([]Interval, 0, len(remaining)+1)
			for _, r := range remaining {
				next = append(next, Subtract(r, blockedInterval)...)
			}
			remaining = next
		}
		open = append(open, remaining...)
	}

	sort.Slice(open, func(i, j int) bool {
		return open[i].Start.IsBefore(open[j].Start)
	})

	return open
}

// ResolveWindowIntervals возвращает интервалы окон доступности даты без учёта
// блокировок - основа сетки кандидатов для GenerateSlots
func ResolveWindowIntervals(windows []*AvailabilityWindow, date time.Time) []Interval {
	result := make([]Interval, 0, len(windows))
	for _, w := range windows {
		if w.AppliesTo(date) {
			result = append(result, w.Interval())
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Start.IsBefore(result[j].Start)
	})

	return result
}
