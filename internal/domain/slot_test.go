package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectSlots(windows, open []Interval, duration, granularity int, bookings []*Booking) []TimeSlot {
	slots := make([]TimeSlot, 0)
	for slot := range GenerateSlots(wednesday, windows, open, duration, granularity, bookings) {
		slots = append(slots, slot)
	}
	return slots
}

func TestGenerateSlots_FullWindowFree(t *testing.T) {
	windows := []Interval{interval("09:00", "11:00")}

	slots := collectSlots(windows, windows, 30, 30, nil)
	require.Len(t, slots, 4)

	starts := make([]string, len(slots))
	for i, s := range slots {
		starts[i] = s.StartTime.String()
		assert.Equal(t, SlotFree, s.Status)
		assert.Equal(t, 30, s.DurationMinutes)
		assert.True(t, s.IsBookable())
	}
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30"}, starts)
}

func TestGenerateSlots_TailShorterThanServiceDropped(t *testing.T) {
	// Окно 09:00-10:45, услуга 30 минут: кандидат 10:30-11:00 не помещается
	windows := []Interval{interval("09:00", "10:45")}

	slots := collectSlots(windows, windows, 30, 30, nil)
	require.Len(t, slots, 3)
	assert.Equal(t, "10:00", slots[len(slots)-1].StartTime.String())
}

func TestGenerateSlots_ServiceLongerThanGranularity(t *testing.T) {
	// Услуга 60 минут при шаге 30: кандидаты перекрываются и идут с шагом 30
	windows := []Interval{interval("09:00", "11:00")}

	slots := collectSlots(windows, windows, 60, 30, nil)
	require.Len(t, slots, 3)
	assert.Equal(t, "09:00", slots[0].StartTime.String())
	assert.Equal(t, "09:30", slots[1].StartTime.String())
	assert.Equal(t, "10:00", slots[2].StartTime.String())
}

func TestGenerateSlots_TakenOverlappingBooking(t *testing.T) {
	windows := []Interval{interval("09:00", "11:00")}
	bookings := []*Booking{
		{ID: 1, StartTime: "09:30", DurationMinutes: 30, Status: StatusConfirmed},
	}

	slots := collectSlots(windows, windows, 30, 30, bookings)
	require.Len(t, slots, 4)
	assert.Equal(t, SlotFree, slots[0].Status)
	assert.Equal(t, SlotTaken, slots[1].Status)
	assert.Equal(t, SlotFree, slots[2].Status)
	assert.Equal(t, SlotFree, slots[3].Status)
}

func TestGenerateSlots_CancelledBookingReleasesSlot(t *testing.T) {
	windows := []Interval{interval("09:00", "10:00")}
	bookings := []*Booking{
		{ID: 1, StartTime: "09:00", DurationMinutes: 30, Status: StatusCancelled},
		{ID: 2, StartTime: "09:30", DurationMinutes: 30, Status: StatusCompleted},
	}

	slots := collectSlots(windows, windows, 30, 30, bookings)
	require.Len(t, slots, 2)
	for _, s := range slots {
		assert.Equal(t, SlotFree, s.Status)
	}
}

func TestGenerateSlots_BlockedWhenOutsideOpenIntervals(t *testing.T) {
	// Сетка идёт по окну целиком, но открыт только кусок после блокировки
	windows := []Interval{interval("09:00", "11:00")}
	open := []Interval{interval("10:00", "11:00")}

	slots := collectSlots(windows, open, 30, 30, nil)
	require.Len(t, slots, 4)
	assert.Equal(t, SlotBlocked, slots[0].Status)
	assert.Equal(t, SlotBlocked, slots[1].Status)
	assert.Equal(t, SlotFree, slots[2].Status)
	assert.Equal(t, SlotFree, slots[3].Status)
}

func TestGenerateSlots_SpanningOpenGapIsBlocked(t *testing.T) {
	// Кандидат 09:30-10:30 не лежит целиком ни в одном открытом интервале,
	// даже если оба его края открыты
	windows := []Interval{interval("09:00", "11:00")}
	open := []Interval{interval("09:00", "10:00"), interval("10:00", "11:00")}

	slots := collectSlots(windows, open, 60, 30, nil)
	require.Len(t, slots, 3)
	assert.Equal(t, SlotFree, slots[0].Status)    // 09:00-10:00
	assert.Equal(t, SlotBlocked, slots[1].Status) // 09:30-10:30
	assert.Equal(t, SlotFree, slots[2].Status)    // 10:00-11:00
}

func TestGenerateSlots_Restartable(t *testing.T) {
	windows := []Interval{interval("09:00", "12:00")}
	seq := GenerateSlots(wednesday, windows, windows, 30, 30, nil)

	first := make([]TimeSlot, 0)
	for s := range seq {
		first = append(first, s)
	}
	second := make([]TimeSlot, 0)
	for s := range seq {
		second = append(second, s)
	}

	assert.Equal(t, first, second)
}

func TestGenerateSlots_EarlyStop(t *testing.T) {
	windows := []Interval{interval("09:00", "17:00")}

	count := 0
	for range GenerateSlots(wednesday, windows, windows, 30, 30, nil) {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}

func TestGenerateSlots_InvalidDuration(t *testing.T) {
	windows := []Interval{interval("09:00", "17:00")}

	assert.Empty(t, collectSlots(windows, windows, 0, 30, nil))
	assert.Empty(t, collectSlots(windows, windows, 30, 0, nil))
}
