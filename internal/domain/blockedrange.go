package domain

import (
	"fmt"
	"time"

	"github.com/glossbook/scheduling-service/pkg/types"
)

// BlockedRange объявленный оператором период недоступности
// Одна запись всегда покрывает ровно одну календарную дату; многодневная
// блокировка - это клиентский запрос, разворачиваемый в набор записей
// через ExpandBlockRequest
type BlockedRange struct {
	ID        int64
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	AllDay    bool
	Reason    *string

	CreatedAt time.Time
}

// Interval возвращает заблокированный интервал даты
// Для AllDay времена игнорируются и блокируются целые сутки
func (r *BlockedRange) Interval() Interval {
	if r.AllDay {
		return Interval{Start: StartOfDay, End: EndOfDay}
	}
	return Interval{Start: r.StartTime, End: r.EndTime}
}

// BlockRequest запрос оператора на блокировку времени
// Может указывать одну дату (StartDate == EndDate) или включительный диапазон
type BlockRequest struct {
	StartDate time.Time
	EndDate   time.Time
	StartTime types.TimeString // игнорируется при AllDay
	EndTime   types.TimeString // игнорируется при AllDay
	AllDay    bool
	Reason    *string
}

// ExpandBlockRequest разворачивает запрос блокировки в записи по одной на дату
//
// Политика для многодневных запросов без AllDay:
//   - первый день блокируется от StartTime до конца суток (23:59:59)
//   - каждый внутренний день блокируется целиком (AllDay = true)
//   - последний день блокируется от начала суток (00:00:00) до EndTime
//
// Для AllDay-запроса каждая покрытая дата блокируется целиком
func ExpandBlockRequest(req BlockRequest) ([]*BlockedRange, error) {
	startDate := dateOnly(req.StartDate)
	endDate := dateOnly(req.EndDate)

	if endDate.Before(startDate) {
		return nil, fmt.Errorf("%w: %s is after %s",
			ErrInvalidDateRange, startDate.Format(DateFormat), endDate.Format(DateFormat))
	}

	if !req.AllDay {
		if err := validateBlockTimes(req, startDate.Equal(endDate)); err != nil {
			return nil, err
		}
	}

	ranges := make([]*BlockedRange, 0, 1)
	for date := startDate; !date.After(endDate); date = date.AddDate(0, 0, 1) {
		ranges = append(ranges, buildBlockedRange(req, date, startDate, endDate))
	}

	return ranges, nil
}

// validateBlockTimes проверяет временные границы запроса без AllDay
func validateBlockTimes(req BlockRequest, singleDay bool) error {
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: start time: %v", ErrInvalidInterval, err)
	}
	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: end time: %v", ErrInvalidInterval, err)
	}

	if singleDay {
		if !req.StartTime.IsBefore(req.EndTime) {
			return fmt.Errorf("%w: %s >= %s", ErrInvalidInterval, req.StartTime, req.EndTime)
		}
		return nil
	}

	// Граничные дни многодневного диапазона: [StartTime, 23:59:59) и [00:00:00, EndTime)
	if !req.StartTime.IsBefore(EndOfDay) {
		return fmt.Errorf("%w: first day start %s leaves an empty interval", ErrInvalidInterval, req.StartTime)
	}
	if !StartOfDay.IsBefore(req.EndTime) {
		return fmt.Errorf("%w: last day end %s leaves an empty interval", ErrInvalidInterval, req.EndTime)
	}

	return nil
}

// buildBlockedRange собирает запись блокировки для одной даты диапазона
func buildBlockedRange(req BlockRequest, date, startDate, endDate time.Time) *BlockedRange {
	blocked := &BlockedRange{Date: date, Reason: req.Reason}

	switch {
	case req.AllDay:
		blocked.AllDay = true

	case startDate.Equal(endDate):
		blocked.StartTime = req.StartTime
		blocked.EndTime = req.EndTime

	case date.Equal(startDate):
		blocked.StartTime = req.StartTime
		blocked.EndTime = EndOfDay

	case date.Equal(endDate):
		blocked.StartTime = StartOfDay
		blocked.EndTime = req.EndTime

	default:
		// Внутренний день многодневного диапазона
		blocked.AllDay = true
	}

	return blocked
}

// dateOnly обнуляет время, оставляя только дату
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
