package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glossbook/scheduling-service/internal/domain"
	"github.com/glossbook/scheduling-service/internal/infra/events"
	serviceRepo "github.com/glossbook/scheduling-service/internal/infra/storage/service"
	"github.com/glossbook/scheduling-service/internal/integrations/notifier"
	"github.com/glossbook/scheduling-service/pkg/types"
)

// 15 октября 2025 - среда, 20 октября - понедельник
var (
	testNow  = time.Date(2025, time.October, 15, 12, 0, 0, 0, time.UTC)
	testDate = time.Date(2025, time.October, 20, 0, 0, 0, 0, time.UTC)
)

type fakeBookingRepo struct {
	existing  []*domain.Booking
	created   *domain.Booking
	createErr error
	nextID    int64
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	saved := *b
	saved.ID = f.nextID
	saved.CreatedAt = testNow
	f.created = &saved
	return &saved, nil
}

func (f *fakeBookingRepo) GetByServiceDate(_ context.Context, serviceID int64, date time.Time, activeOnly bool) ([]*domain.Booking, error) {
	return f.existing, nil
}

type fakeWindowRepo struct {
	windows []*domain.AvailabilityWindow
}

func (f *fakeWindowRepo) ListByDay(_ context.Context, dayOfWeek int) ([]*domain.AvailabilityWindow, error) {
	result := make([]*domain.AvailabilityWindow, 0)
	for _, w := range f.windows {
		if w.DayOfWeek == dayOfWeek {
			result = append(result, w)
		}
	}
	return result, nil
}

type fakeBlockedRepo struct {
	blocked []*domain.BlockedRange
}

func (f *fakeBlockedRepo) ListByDate(_ context.Context, date time.Time) ([]*domain.BlockedRange, error) {
	return f.blocked, nil
}

type fakeServiceRepo struct {
	service *domain.Service
	err     error
}

func (f *fakeServiceRepo) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.service, nil
}

type fakeTxManager struct {
	calls int
	// занимает слот перед выполнением транзакции, имитируя конкурента,
	// успевшего закоммититься между просмотром слотов и созданием записи
	beforeTx func()
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	if f.beforeTx != nil {
		f.beforeTx()
	}
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
	uc        *UseCase
	bookings  *fakeBookingRepo
	windows   *fakeWindowRepo
	blocked   *fakeBlockedRepo
	services  *fakeServiceRepo
	tx        *fakeTxManager
	notifier  *fakeNotifier
	publisher *fakePublisher
}

func mondayWindow(start, end types.TimeString) *domain.AvailabilityWindow {
	return &domain.AvailabilityWindow{DayOfWeek: 1, StartTime: start, EndTime: end, IsAvailable: true}
}

func haircut() *domain.Service {
	return &domain.Service{
		ID:              5,
		Name:            "Haircut",
		DurationMinutes: 60,
		Price:           1500,
		Active:          true,
	}
}

func newTestEnv(service *domain.Service) *testEnv {
	env := &testEnv{
		bookings:  &fakeBookingRepo{nextID: 101},
		windows:   &fakeWindowRepo{windows: []*domain.AvailabilityWindow{mondayWindow("09:00", "17:00")}},
		blocked:   &fakeBlockedRepo{},
		services:  &fakeServiceRepo{service: service},
		tx:        &fakeTxManager{},
		notifier:  &fakeNotifier{},
		publisher: &fakePublisher{},
	}
	env.uc = NewUseCase(env.bookings, env.windows, env.blocked, env.services,
		env.tx, env.notifier, env.publisher, fakeLogger{})
	env.uc.timeProvider = fixedTime{now: testNow}
	return env
}

func validRequest() *Request {
	return &Request{
		UserID:        42,
		ServiceID:     5,
		ScheduledDate: testDate,
		StartTime:     "10:00",
		CustomerName:  "Ivan",
		CustomerEmail: "ivan@example.com",
	}
}

func TestExecute_CreatesPendingBooking(t *testing.T) {
	env := newTestEnv(haircut())

	resp, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(101), resp.ID)
	assert.NotEqual(t, uuid.Nil, resp.PublicRef)
	assert.Equal(t, domain.StatusPending, resp.Status)
	assert.False(t, resp.Paid)
	assert.Equal(t, 1500.0, resp.Price)
	assert.Equal(t, 60, resp.DurationMinutes)
	assert.Equal(t, "Haircut", resp.ServiceName)

	require.NotNil(t, env.bookings.created)
	assert.Equal(t, types.TimeString("10:00"), env.bookings.created.StartTime)

	require.Len(t, env.notifier.events, 1)
	assert.Equal(t, notifier.EventBookingCreated, env.notifier.events[0].Type)
	assert.Equal(t, "2025-10-20", env.notifier.events[0].Date)

	require.Len(t, env.publisher.events, 1)
	assert.Equal(t, events.KindBookingCreated, env.publisher.events[0].Kind)
	assert.Equal(t, "2025-10-20", env.publisher.events[0].Date)
	assert.Equal(t, int64(101), env.publisher.events[0].BookingID)
}

func TestExecute_FreeServiceConfirmedImmediately(t *testing.T) {
	free := haircut()
	free.Price = 0
	env := newTestEnv(free)

	resp, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, domain.StatusConfirmed, resp.Status)
	assert.True(t, resp.Paid)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	env := newTestEnv(nil)
	env.services.err = serviceRepo.ErrServiceNotFound

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrServiceNotFound)
	assert.Zero(t, env.tx.calls)
}

func TestExecute_ServiceInactive(t *testing.T) {
	inactive := haircut()
	inactive.Active = false
	env := newTestEnv(inactive)

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrServiceInactive)
	assert.Zero(t, env.tx.calls)
}

func TestExecute_SlotConflict(t *testing.T) {
	env := newTestEnv(haircut())
	env.bookings.existing = []*domain.Booking{
		{ID: 1, StartTime: "10:30", DurationMinutes: 30, Status: domain.StatusConfirmed},
	}

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Nil(t, env.bookings.created)
	assert.Empty(t, env.notifier.events)
	assert.Empty(t, env.publisher.events)
}

func TestExecute_ConcurrentBookingCaughtAtCommit(t *testing.T) {
	// Слот свободен на момент просмотра, но конкурент занимает его до того,
	// как транзакция перечитает день
	env := newTestEnv(haircut())
	env.tx.beforeTx = func() {
		env.bookings.existing = []*domain.Booking{
			{ID: 1, StartTime: "10:00", DurationMinutes: 60, Status: domain.StatusPending},
		}
	}

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Nil(t, env.bookings.created)
}

func TestExecute_SlotOutsideSchedule(t *testing.T) {
	env := newTestEnv(haircut())

	tests := []struct {
		name string
		time types.TimeString
	}{
		{name: "before opening", time: "08:00"},
		{name: "tail crosses closing", time: "16:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.StartTime = tt.time

			_, err := env.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrSlotUnavailable)
		})
	}
}

func TestExecute_BlockedRangeMakesSlotUnavailable(t *testing.T) {
	env := newTestEnv(haircut())
	env.blocked.blocked = []*domain.BlockedRange{
		{Date: testDate, StartTime: "10:00", EndTime: "12:00"},
	}

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestExecute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{name: "non-positive user id", mutate: func(r *Request) { r.UserID = 0 }},
		{name: "non-positive service id", mutate: func(r *Request) { r.ServiceID = -1 }},
		{name: "zero date", mutate: func(r *Request) { r.ScheduledDate = time.Time{} }},
		{name: "past date", mutate: func(r *Request) { r.ScheduledDate = testNow.AddDate(0, 0, -1) }},
		{name: "malformed time", mutate: func(r *Request) { r.StartTime = "10am" }},
		{name: "empty customer name", mutate: func(r *Request) { r.CustomerName = "  " }},
		{name: "empty email", mutate: func(r *Request) { r.CustomerEmail = "" }},
		{name: "email without at sign", mutate: func(r *Request) { r.CustomerEmail = "ivan.example.com" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(haircut())
			req := validRequest()
			tt.mutate(req)

			_, err := env.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Zero(t, env.tx.calls)
		})
	}
}
