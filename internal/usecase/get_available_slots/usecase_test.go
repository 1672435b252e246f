package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glossbook/scheduling-service/internal/domain"
	serviceRepo "github.com/glossbook/scheduling-service/internal/infra/storage/service"
	"github.com/glossbook/scheduling-service/pkg/types"
)

// 15 октября 2025 - среда, 17 октября - пятница
var (
	testNow   = time.Date(2025, time.October, 15, 12, 0, 0, 0, time.UTC)
	wednesday = time.Date(2025, time.October, 15, 0, 0, 0, 0, time.UTC)
	friday    = time.Date(2025, time.October, 17, 0, 0, 0, 0, time.UTC)
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) GetByServiceDate(_ context.Context, serviceID int64, date time.Time, activeOnly bool) ([]*domain.Booking, error) {
	return f.bookings, nil
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

type fakeLogger struct{}

func (fakeLogger) Info(format string, v ...interface{})  {}
func (fakeLogger) Warn(format string, v ...interface{})  {}
func (fakeLogger) Error(format string, v ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type testEnv struct {
	uc       *UseCase
	bookings *fakeBookingRepo
	windows  *fakeWindowRepo
	blocked  *fakeBlockedRepo
	services *fakeServiceRepo
}

func fridayWindow(start, end types.TimeString) *domain.AvailabilityWindow {
	return &domain.AvailabilityWindow{DayOfWeek: 5, StartTime: start, EndTime: end, IsAvailable: true}
}

func newTestEnv() *testEnv {
	env := &testEnv{
		bookings: &fakeBookingRepo{},
		windows:  &fakeWindowRepo{windows: []*domain.AvailabilityWindow{fridayWindow("09:00", "11:00")}},
		blocked:  &fakeBlockedRepo{},
		services: &fakeServiceRepo{service: &domain.Service{
			ID: 5, Name: "Haircut", DurationMinutes: 30, Price: 1500, Active: true,
		}},
	}
	env.uc = NewUseCase(env.bookings, env.windows, env.blocked, env.services, fakeLogger{})
	env.uc.timeProvider = fixedTime{now: testNow}
	return env
}

func starts(slots []domain.TimeSlot) []string {
	result := make([]string, len(slots))
	for i, s := range slots {
		result[i] = s.StartTime.String()
	}
	return result
}

func TestExecute_ReturnsFreeSlots(t *testing.T) {
	env := newTestEnv()

	resp, err := env.uc.Execute(context.Background(), &Request{ServiceID: 5, Date: friday})
	require.NoError(t, err)

	assert.Equal(t, friday, resp.Date)
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30"}, starts(resp.Slots))
	for _, s := range resp.Slots {
		assert.Equal(t, domain.SlotFree, s.Status)
	}
}

func TestExecute_TakenSlotsMarked(t *testing.T) {
	env := newTestEnv()
	env.bookings.bookings = []*domain.Booking{
		{ID: 1, StartTime: "09:30", DurationMinutes: 30, Status: domain.StatusConfirmed},
	}

	resp, err := env.uc.Execute(context.Background(), &Request{ServiceID: 5, Date: friday})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 4)
	assert.Equal(t, domain.SlotFree, resp.Slots[0].Status)
	assert.Equal(t, domain.SlotTaken, resp.Slots[1].Status)
	assert.Equal(t, domain.SlotFree, resp.Slots[2].Status)
}

func TestExecute_BlockedSlotsHiddenByDefault(t *testing.T) {
	env := newTestEnv()
	env.blocked.blocked = []*domain.BlockedRange{
		{Date: friday, StartTime: "09:00", EndTime: "10:00"},
	}

	resp, err := env.uc.Execute(context.Background(), &Request{ServiceID: 5, Date: friday})
	require.NoError(t, err)
	assert.Equal(t, []string{"10:00", "10:30"}, starts(resp.Slots))
}

func TestExecute_IncludeBlockedShowsFullGrid(t *testing.T) {
	env := newTestEnv()
	env.blocked.blocked = []*domain.BlockedRange{
		{Date: friday, StartTime: "09:00", EndTime: "10:00"},
	}

	resp, err := env.uc.Execute(context.Background(), &Request{
		ServiceID: 5, Date: friday, IncludeBlocked: true,
	})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 4)
	assert.Equal(t, domain.SlotBlocked, resp.Slots[0].Status)
	assert.Equal(t, domain.SlotBlocked, resp.Slots[1].Status)
	assert.Equal(t, domain.SlotFree, resp.Slots[2].Status)
	assert.Equal(t, domain.SlotFree, resp.Slots[3].Status)
}

func TestExecute_AllDayBlockWithIncludeBlocked(t *testing.T) {
	// Даже при полностью заблокированном дне админский календарь
	// получает сетку, а не пустой ответ
	env := newTestEnv()
	env.blocked.blocked = []*domain.BlockedRange{{Date: friday, AllDay: true}}

	resp, err := env.uc.Execute(context.Background(), &Request{
		ServiceID: 5, Date: friday, IncludeBlocked: true,
	})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 4)
	for _, s := range resp.Slots {
		assert.Equal(t, domain.SlotBlocked, s.Status)
	}

	// А клиентский запрос видит пустой день
	resp, err = env.uc.Execute(context.Background(), &Request{ServiceID: 5, Date: friday})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_PastDateEmpty(t *testing.T) {
	env := newTestEnv()

	resp, err := env.uc.Execute(context.Background(), &Request{
		ServiceID: 5, Date: wednesday.AddDate(0, 0, -7),
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_TodayPastSlotsFiltered(t *testing.T) {
	// Сейчас 12:00 среды: утренние слоты уже не предлагаются
	env := newTestEnv()
	env.windows.windows = []*domain.AvailabilityWindow{
		{DayOfWeek: 3, StartTime: "09:00", EndTime: "17:00", IsAvailable: true},
	}

	resp, err := env.uc.Execute(context.Background(), &Request{ServiceID: 5, Date: wednesday})
	require.NoError(t, err)

	require.NotEmpty(t, resp.Slots)
	assert.Equal(t, "12:00", resp.Slots[0].StartTime.String())
}

func TestExecute_NoWindowsForDay(t *testing.T) {
	env := newTestEnv()

	// Понедельник без настроенных окон
	monday := time.Date(2025, time.October, 20, 0, 0, 0, 0, time.UTC)
	resp, err := env.uc.Execute(context.Background(), &Request{ServiceID: 5, Date: monday})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	env := newTestEnv()
	env.services.err = serviceRepo.ErrServiceNotFound

	_, err := env.uc.Execute(context.Background(), &Request{ServiceID: 5, Date: friday})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_ServiceInactive(t *testing.T) {
	env := newTestEnv()
	env.services.service.Active = false

	_, err := env.uc.Execute(context.Background(), &Request{ServiceID: 5, Date: friday})
	assert.ErrorIs(t, err, ErrServiceInactive)
}

func TestExecute_ValidationErrors(t *testing.T) {
	env := newTestEnv()

	_, err := env.uc.Execute(context.Background(), &Request{ServiceID: 0, Date: friday})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = env.uc.Execute(context.Background(), &Request{ServiceID: 5})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
