package blockedranges

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glossbook/scheduling-service/internal/domain"
	"github.com/glossbook/scheduling-service/internal/infra/events"
	blockedRepo "github.com/glossbook/scheduling-service/internal/infra/storage/blockedrange"
)

type fakeBlockedRepo struct {
	ranges    []*domain.BlockedRange
	deleteErr error
	deletedID int64
	date      time.Time
}

func (f *fakeBlockedRepo) ListByPeriod(_ context.Context, from, to time.Time) ([]*domain.BlockedRange, error) {
	return f.ranges, nil
}

func (f *fakeBlockedRepo) Delete(_ context.Context, id int64) (time.Time, error) {
	if f.deleteErr != nil {
		return time.Time{}, f.deleteErr
	}
	f.deletedID = id
	return f.date, nil
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

func TestListByPeriod(t *testing.T) {
	reason := "vacation"
	repo := &fakeBlockedRepo{ranges: []*domain.BlockedRange{
		{ID: 1, Date: time.Date(2025, time.October, 15, 0, 0, 0, 0, time.UTC), StartTime: "12:00", EndTime: "14:00"},
		{ID: 2, Date: time.Date(2025, time.October, 16, 0, 0, 0, 0, time.UTC), AllDay: true, Reason: &reason},
	}}
	svc := NewService(repo, &fakePublisher{}, fakeLogger{})

	resp, err := svc.ListByPeriod(context.Background(),
		time.Date(2025, time.October, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.October, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, resp.Ranges, 2)

	assert.Equal(t, "12:00", resp.Ranges[0].StartTime)

	// У блокировки на весь день времена в ответе не заполняются
	assert.True(t, resp.Ranges[1].AllDay)
	assert.Empty(t, resp.Ranges[1].StartTime)
	require.NotNil(t, resp.Ranges[1].Reason)
}

func TestListByPeriod_InvalidPeriod(t *testing.T) {
	svc := NewService(&fakeBlockedRepo{}, &fakePublisher{}, fakeLogger{})

	_, err := svc.ListByPeriod(context.Background(),
		time.Date(2025, time.October, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.October, 15, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDelete(t *testing.T) {
	repo := &fakeBlockedRepo{date: time.Date(2025, time.October, 15, 0, 0, 0, 0, time.UTC)}
	publisher := &fakePublisher{}
	svc := NewService(repo, publisher, fakeLogger{})

	require.NoError(t, svc.Delete(context.Background(), 3))
	assert.Equal(t, int64(3), repo.deletedID)

	// День снова открыт - подписчики расписания узнают об этом
	require.Len(t, publisher.events, 1)
	assert.Equal(t, events.KindRangeUnblocked, publisher.events[0].Kind)
	assert.Equal(t, "2025-10-15", publisher.events[0].Date)
}

func TestDelete_NotFound(t *testing.T) {
	repo := &fakeBlockedRepo{deleteErr: blockedRepo.ErrBlockedRangeNotFound}
	publisher := &fakePublisher{}
	svc := NewService(repo, publisher, fakeLogger{})

	err := svc.Delete(context.Background(), 3)
	assert.ErrorIs(t, err, ErrBlockedRangeNotFound)
	assert.Empty(t, publisher.events)
}
