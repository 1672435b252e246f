package bookings

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glossbook/scheduling-service/internal/domain"
	"github.com/glossbook/scheduling-service/internal/infra/events"
	bookingRepo "github.com/glossbook/scheduling-service/internal/infra/storage/booking"
	"github.com/glossbook/scheduling-service/internal/integrations/notifier"
	"github.com/glossbook/scheduling-service/internal/service/bookings/models"
	"github.com/glossbook/scheduling-service/pkg/ptr"
)

var testNow = time.Date(2025, time.October, 15, 12, 0, 0, 0, time.UTC)

type fakeBookingRepo struct {
	booking *domain.Booking
	list    []*domain.Booking
	getErr  error
	updated *domain.Booking

	// запоминается последний фильтр GetByUserID
	lastStatus *domain.BookingStatus
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.booking, nil
}

func (f *fakeBookingRepo) GetByUserID(_ context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	f.lastStatus = status
	return f.list, nil
}

func (f *fakeBookingRepo) Update(_ context.Context, b *domain.Booking) error {
	f.updated = b
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeNotifier struct {
	events []*notifier.BookingEvent
}

func (f *fakeNotifier) SendQuietly(_ context.Context, event *notifier.BookingEvent) {
	f.events = append(f.events, event)
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

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type testEnv struct {
	svc       *Service
	repo      *fakeBookingRepo
	notifier  *fakeNotifier
	publisher *fakePublisher
}

func newTestEnv(booking *domain.Booking) *testEnv {
	env := &testEnv{
		repo:      &fakeBookingRepo{booking: booking},
		notifier:  &fakeNotifier{},
		publisher: &fakePublisher{},
	}
	env.svc = NewService(env.repo, fakeTxManager{}, env.notifier, env.publisher, fakeLogger{})
	env.svc.timeProvider = fixedTime{now: testNow}
	return env
}

func testBooking(status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:              7,
		UserID:          42,
		ServiceID:       5,
		ScheduledDate:   time.Date(2025, time.October, 20, 0, 0, 0, 0, time.UTC),
		StartTime:       "10:00",
		DurationMinutes: 60,
		Status:          status,
		ServiceName:     "Haircut",
		CustomerName:    "Ivan",
		CustomerEmail:   "ivan@example.com",
	}
}

func TestGetByID(t *testing.T) {
	env := newTestEnv(testBooking(domain.StatusConfirmed))

	resp, err := env.svc.GetByID(context.Background(), 7, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "2025-10-20", resp.ScheduledDate)
	assert.Equal(t, "10:00", resp.StartTime)
}

func TestGetByID_AccessDenied(t *testing.T) {
	env := newTestEnv(testBooking(domain.StatusConfirmed))

	_, err := env.svc.GetByID(context.Background(), 7, 100)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	env := newTestEnv(nil)
	env.repo.getErr = bookingRepo.ErrBookingNotFound

	_, err := env.svc.GetByID(context.Background(), 7, 42)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetUserBookings_StatusFilter(t *testing.T) {
	env := newTestEnv(nil)
	env.repo.list = []*domain.Booking{testBooking(domain.StatusConfirmed)}

	resp, err := env.svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: 42,
		Status: ptr.Ptr("confirmed"),
	})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)

	require.NotNil(t, env.repo.lastStatus)
	assert.Equal(t, domain.StatusConfirmed, *env.repo.lastStatus)
}

func TestGetUserBookings_InvalidStatus(t *testing.T) {
	env := newTestEnv(nil)

	_, err := env.svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: 42,
		Status: ptr.Ptr("archived"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestConfirm(t *testing.T) {
	env := newTestEnv(testBooking(domain.StatusPending))

	resp, err := env.svc.Confirm(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.True(t, resp.Paid)
	require.NotNil(t, env.repo.updated)
	assert.True(t, env.repo.updated.Paid)

	require.Len(t, env.notifier.events, 1)
	assert.Equal(t, notifier.EventBookingConfirmed, env.notifier.events[0].Type)
}

func TestConfirm_InvalidTransition(t *testing.T) {
	for _, status := range []domain.BookingStatus{domain.StatusConfirmed, domain.StatusCancelled, domain.StatusCompleted} {
		env := newTestEnv(testBooking(status))

		_, err := env.svc.Confirm(context.Background(), 7)
		assert.ErrorIs(t, err, ErrInvalidTransition, "from %s", status)
		assert.Empty(t, env.notifier.events)
	}
}

func TestCancel(t *testing.T) {
	env := newTestEnv(testBooking(domain.StatusConfirmed))

	err := env.svc.Cancel(context.Background(), 7, &models.CancelBookingRequest{
		UserID:             42,
		CancellationReason: "plans changed",
	})
	require.NoError(t, err)

	require.NotNil(t, env.repo.updated)
	assert.Equal(t, domain.StatusCancelled, env.repo.updated.Status)
	require.NotNil(t, env.repo.updated.CancelledAt)
	assert.Equal(t, testNow, *env.repo.updated.CancelledAt)

	require.Len(t, env.notifier.events, 1)
	assert.Equal(t, notifier.EventBookingCancelled, env.notifier.events[0].Type)
	require.NotNil(t, env.notifier.events[0].Reason)
	assert.Equal(t, "plans changed", *env.notifier.events[0].Reason)

	// Слот освободился - подписчики расписания узнают об этом
	require.Len(t, env.publisher.events, 1)
	assert.Equal(t, events.KindBookingCancelled, env.publisher.events[0].Kind)
	assert.Equal(t, "2025-10-20", env.publisher.events[0].Date)
}

func TestCancel_AccessDenied(t *testing.T) {
	env := newTestEnv(testBooking(domain.StatusConfirmed))

	err := env.svc.Cancel(context.Background(), 7, &models.CancelBookingRequest{UserID: 100})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Nil(t, env.repo.updated)
	assert.Empty(t, env.publisher.events)
}

func TestCancel_AlreadyFinished(t *testing.T) {
	for _, status := range []domain.BookingStatus{domain.StatusCancelled, domain.StatusCompleted} {
		env := newTestEnv(testBooking(status))

		err := env.svc.Cancel(context.Background(), 7, &models.CancelBookingRequest{UserID: 42})
		assert.ErrorIs(t, err, ErrCannotCancel, "from %s", status)
	}
}

func TestCancel_ReasonTooLong(t *testing.T) {
	env := newTestEnv(testBooking(domain.StatusConfirmed))

	err := env.svc.Cancel(context.Background(), 7, &models.CancelBookingRequest{
		UserID:             42,
		CancellationReason: strings.Repeat("x", domain.MaxCancellationReasonLength+1),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestComplete(t *testing.T) {
	env := newTestEnv(testBooking(domain.StatusConfirmed))

	require.NoError(t, env.svc.Complete(context.Background(), 7))
	require.NotNil(t, env.repo.updated)
	assert.Equal(t, domain.StatusCompleted, env.repo.updated.Status)
}

func TestComplete_InvalidTransition(t *testing.T) {
	env := newTestEnv(testBooking(domain.StatusPending))

	err := env.svc.Complete(context.Background(), 7)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}
