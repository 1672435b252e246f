package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/glossbook/scheduling-service/pkg/types"
)

func TestCheckSlot_Free(t *testing.T) {
	open := []Interval{interval("09:00", "17:00")}

	err := CheckSlot(open, nil, "10:00", 30, 0)
	assert.NoError(t, err)
}

func TestCheckSlot_OutsideOpenIntervals(t *testing.T) {
	open := []Interval{interval("09:00", "12:00")}

	tests := []struct {
		name     string
		start    string
		duration int
	}{
		{name: "before opening", start: "08:00", duration: 30},
		{name: "tail crosses closing", start: "11:45", duration: 30},
		{name: "no open intervals at all", start: "10:00", duration: 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intervals := open
			if tt.name == "no open intervals at all" {
				intervals = nil
			}
			err := CheckSlot(intervals, nil, types.TimeString(tt.start), tt.duration, 0)
			assert.ErrorIs(t, err, ErrSlotUnavailable)
		})
	}
}

func TestCheckSlot_ConflictWithActiveBooking(t *testing.T) {
	open := []Interval{interval("09:00", "17:00")}
	bookings := []*Booking{
		{ID: 7, StartTime: "10:00", DurationMinutes: 60, Status: StatusPending},
	}

	err := CheckSlot(open, bookings, "10:30", 30, 0)
	assert.ErrorIs(t, err, ErrSlotConflict)

	// Граничащий сзади слот не конфликтует
	err = CheckSlot(open, bookings, "11:00", 30, 0)
	assert.NoError(t, err)
}

func TestCheckSlot_InactiveBookingIgnored(t *testing.T) {
	open := []Interval{interval("09:00", "17:00")}
	bookings := []*Booking{
		{ID: 7, StartTime: "10:00", DurationMinutes: 60, Status: StatusCancelled},
	}

	err := CheckSlot(open, bookings, "10:00", 60, 0)
	assert.NoError(t, err)
}

func TestCheckSlot_ExcludesOwnBooking(t *testing.T) {
	// При переносе запись не должна конфликтовать сама с собой
	open := []Interval{interval("09:00", "17:00")}
	bookings := []*Booking{
		{ID: 7, StartTime: "10:00", DurationMinutes: 60, Status: StatusConfirmed},
		{ID: 8, StartTime: "14:00", DurationMinutes: 60, Status: StatusConfirmed},
	}

	assert.NoError(t, CheckSlot(open, bookings, "10:30", 30, 7))
	assert.ErrorIs(t, CheckSlot(open, bookings, "14:30", 30, 7), ErrSlotConflict)
}

func TestCheckSlot_InvalidInterval(t *testing.T) {
	open := []Interval{interval("09:00", "17:00")}

	// Конец слота выходит за границы суток
	err := CheckSlot(open, nil, "23:50", 30, 0)
	assert.ErrorIs(t, err, ErrInvalidInterval)
}
