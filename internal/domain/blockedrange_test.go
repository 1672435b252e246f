package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glossbook/scheduling-service/pkg/types"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExpandBlockRequest_SingleDay(t *testing.T) {
	ranges, err := ExpandBlockRequest(BlockRequest{
		StartDate: date(2025, time.October, 15),
		EndDate:   date(2025, time.October, 15),
		StartTime: "12:00",
		EndTime:   "14:00",
	})
	require.NoError(t, err)
	require.Len(t, ranges, 1)

	assert.Equal(t, date(2025, time.October, 15), ranges[0].Date)
	assert.Equal(t, types.TimeString("12:00"), ranges[0].StartTime)
	assert.Equal(t, types.TimeString("14:00"), ranges[0].EndTime)
	assert.False(t, ranges[0].AllDay)
}

func TestExpandBlockRequest_MultiDaySplit(t *testing.T) {
	// Трёхдневный диапазон с временами: первый день до конца суток,
	// внутренний день целиком, последний день от начала суток
	ranges, err := ExpandBlockRequest(BlockRequest{
		StartDate: date(2025, time.October, 15),
		EndDate:   date(2025, time.October, 17),
		StartTime: "18:00",
		EndTime:   "10:00",
	})
	require.NoError(t, err)
	require.Len(t, ranges, 3)

	first := ranges[0]
	assert.Equal(t, date(2025, time.October, 15), first.Date)
	assert.False(t, first.AllDay)
	assert.Equal(t, types.TimeString("18:00"), first.StartTime)
	assert.Equal(t, EndOfDay, first.EndTime)

	middle := ranges[1]
	assert.Equal(t, date(2025, time.October, 16), middle.Date)
	assert.True(t, middle.AllDay)

	last := ranges[2]
	assert.Equal(t, date(2025, time.October, 17), last.Date)
	assert.False(t, last.AllDay)
	assert.Equal(t, StartOfDay, last.StartTime)
	assert.Equal(t, types.TimeString("10:00"), last.EndTime)
}

func TestExpandBlockRequest_AllDay(t *testing.T) {
	reason := "inventory"
	ranges, err := ExpandBlockRequest(BlockRequest{
		StartDate: date(2025, time.October, 15),
		EndDate:   date(2025, time.October, 17),
		AllDay:    true,
		Reason:    &reason,
	})
	require.NoError(t, err)
	require.Len(t, ranges, 3)

	for i, r := range ranges {
		assert.True(t, r.AllDay, "day %d", i)
		assert.Equal(t, date(2025, time.October, 15+i), r.Date)
		require.NotNil(t, r.Reason)
		assert.Equal(t, reason, *r.Reason)
	}
}

func TestExpandBlockRequest_Errors(t *testing.T) {
	tests := []struct {
		name    string
		req     BlockRequest
		wantErr error
	}{
		{
			name: "end date before start date",
			req: BlockRequest{
				StartDate: date(2025, time.October, 17),
				EndDate:   date(2025, time.October, 15),
				AllDay:    true,
			},
			wantErr: ErrInvalidDateRange,
		},
		{
			name: "single day start not before end",
			req: BlockRequest{
				StartDate: date(2025, time.October, 15),
				EndDate:   date(2025, time.October, 15),
				StartTime: "14:00",
				EndTime:   "12:00",
			},
			wantErr: ErrInvalidInterval,
		},
		{
			name: "invalid start time format",
			req: BlockRequest{
				StartDate: date(2025, time.October, 15),
				EndDate:   date(2025, time.October, 15),
				StartTime: "9am",
				EndTime:   "12:00",
			},
			wantErr: ErrInvalidInterval,
		},
		{
			name: "multi day first interval empty",
			req: BlockRequest{
				StartDate: date(2025, time.October, 15),
				EndDate:   date(2025, time.October, 16),
				StartTime: "23:59:59",
				EndTime:   "10:00",
			},
			wantErr: ErrInvalidInterval,
		},
		{
			name: "multi day last interval empty",
			req: BlockRequest{
				StartDate: date(2025, time.October, 15),
				EndDate:   date(2025, time.October, 16),
				StartTime: "18:00",
				EndTime:   "00:00",
			},
			wantErr: ErrInvalidInterval,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExpandBlockRequest(tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBlockedRange_Interval(t *testing.T) {
	partial := &BlockedRange{StartTime: "12:00", EndTime: "14:00"}
	assert.Equal(t, interval("12:00", "14:00"), partial.Interval())

	allDay := &BlockedRange{AllDay: true, StartTime: "12:00", EndTime: "14:00"}
	assert.Equal(t, Interval{Start: StartOfDay, End: EndOfDay}, allDay.Interval())
}
