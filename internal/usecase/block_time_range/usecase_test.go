package block_time_range

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glossbook/scheduling-service/internal/domain"
	"github.com/glossbook/scheduling-service/internal/infra/events"
	"github.com/glossbook/scheduling-service/pkg/types"
)

type fakeBlockedRepo struct {
	saved     []*domain.BlockedRange
	createErr error
	nextID    int64
}

func (f *fakeBlockedRepo) CreateBatch(_ context.Context, ranges []*domain.BlockedRange) ([]*domain.BlockedRange, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := make([]*domain.BlockedRange, 0, len(ranges))
	for _, r := range ranges {
		saved := *r
		f.nextID++
		saved.ID = f.nextID
		created = append(created, &saved)
	}
	f.saved = created
	return created, nil
}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakePublisher struct {
	events []events.ChangeEvent
}

func (f *fakePublisher) Publish(_ context.Context, event events.ChangeEvent) {
	f.events = append(f.events, event)
}

type fakeLogger struct{}

func (fakeLogger) Info(format string, v ...interface{})  {}
func (fakeLogger) Warn(format string, v ...interface{})  {}
func (fakeLogger) Error(format string, v ...interface{}) {}

type testEnv struct {
	uc        *UseCase
	blocked   *fakeBlockedRepo
	tx        *fakeTxManager
	publisher *fakePublisher
}

func newTestEnv() *testEnv {
	env := &testEnv{
		blocked:   &fakeBlockedRepo{},
		tx:        &fakeTxManager{},
		publisher: &fakePublisher{},
	}
	env.uc = NewUseCase(env.blocked, env.tx, env.publisher, fakeLogger{})
	return env
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExecute_SingleDay(t *testing.T) {
	env := newTestEnv()

	resp, err := env.uc.Execute(context.Background(), &Request{
		StartDate: date(2025, time.October, 15),
		EndDate:   date(2025, time.October, 15),
		StartTime: "12:00",
		EndTime:   "14:00",
	})
	require.NoError(t, err)
	require.Len(t, resp.Ranges, 1)

	r := resp.Ranges[0]
	assert.Equal(t, int64(1), r.ID)
	assert.Equal(t, types.TimeString("12:00"), r.StartTime)
	assert.Equal(t, types.TimeString("14:00"), r.EndTime)
	assert.False(t, r.AllDay)

	require.Len(t, env.publisher.events, 1)
	assert.Equal(t, events.KindRangeBlocked, env.publisher.events[0].Kind)
	assert.Equal(t, "2025-10-15", env.publisher.events[0].Date)
}

func TestExecute_MultiDaySplitPersisted(t *testing.T) {
	env := newTestEnv()

	resp, err := env.uc.Execute(context.Background(), &Request{
		StartDate: date(2025, time.October, 15),
		EndDate:   date(2025, time.October, 17),
		StartTime: "18:00",
		EndTime:   "10:00",
	})
	require.NoError(t, err)
	require.Len(t, resp.Ranges, 3)

	// Первый день до конца суток, внутренний целиком, последний от начала суток
	assert.Equal(t, types.TimeString("18:00"), resp.Ranges[0].StartTime)
	assert.Equal(t, domain.EndOfDay, resp.Ranges[0].EndTime)
	assert.True(t, resp.Ranges[1].AllDay)
	assert.Equal(t, domain.StartOfDay, resp.Ranges[2].StartTime)
	assert.Equal(t, types.TimeString("10:00"), resp.Ranges[2].EndTime)

	// Всё сохраняется одной пачкой внутри одной транзакции
	assert.Equal(t, 1, env.tx.calls)
	assert.Len(t, env.blocked.saved, 3)

	// Событие на каждый затронутый день
	require.Len(t, env.publisher.events, 3)
	for i, day := range []string{"2025-10-15", "2025-10-16", "2025-10-17"} {
		assert.Equal(t, events.KindRangeBlocked, env.publisher.events[i].Kind)
		assert.Equal(t, day, env.publisher.events[i].Date)
	}
}

func TestExecute_AllDayIgnoresTimes(t *testing.T) {
	env := newTestEnv()
	reason := "vacation"

	resp, err := env.uc.Execute(context.Background(), &Request{
		StartDate: date(2025, time.October, 15),
		EndDate:   date(2025, time.October, 16),
		StartTime: "not a time",
		EndTime:   "also not",
		AllDay:    true,
		Reason:    &reason,
	})
	require.NoError(t, err)
	require.Len(t, resp.Ranges, 2)

	for _, r := range resp.Ranges {
		assert.True(t, r.AllDay)
		require.NotNil(t, r.Reason)
		assert.Equal(t, "vacation", *r.Reason)
	}
}

func TestExecute_EndDateBeforeStartDate(t *testing.T) {
	env := newTestEnv()

	_, err := env.uc.Execute(context.Background(), &Request{
		StartDate: date(2025, time.October, 17),
		EndDate:   date(2025, time.October, 15),
		AllDay:    true,
	})
	assert.ErrorIs(t, err, ErrInvalidDateRange)
	assert.Zero(t, env.tx.calls)
	assert.Empty(t, env.publisher.events)
}

func TestExecute_InvalidTimes(t *testing.T) {
	env := newTestEnv()

	// Начало не раньше конца в пределах одного дня
	_, err := env.uc.Execute(context.Background(), &Request{
		StartDate: date(2025, time.October, 15),
		EndDate:   date(2025, time.October, 15),
		StartTime: "14:00",
		EndTime:   "12:00",
	})
	assert.ErrorIs(t, err, ErrInvalidTimes)
	assert.Zero(t, env.tx.calls)
}

func TestExecute_ValidationErrors(t *testing.T) {
	longReason := strings.Repeat("x", domain.MaxReasonLength+1)

	tests := []struct {
		name string
		req  *Request
	}{
		{
			name: "missing start date",
			req:  &Request{EndDate: date(2025, time.October, 15), AllDay: true},
		},
		{
			name: "missing end date",
			req:  &Request{StartDate: date(2025, time.October, 15), AllDay: true},
		},
		{
			name: "malformed start time",
			req: &Request{
				StartDate: date(2025, time.October, 15),
				EndDate:   date(2025, time.October, 15),
				StartTime: "noon",
				EndTime:   "14:00",
			},
		},
		{
			name: "reason too long",
			req: &Request{
				StartDate: date(2025, time.October, 15),
				EndDate:   date(2025, time.October, 15),
				AllDay:    true,
				Reason:    &longReason,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv()

			_, err := env.uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Zero(t, env.tx.calls)
		})
	}
}
