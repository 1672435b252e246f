package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glossbook/scheduling-service/internal/domain"
	"github.com/glossbook/scheduling-service/internal/service/schedule/models"
)

type fakeWindowRepo struct {
	windows  []*domain.AvailabilityWindow
	replaced []*domain.AvailabilityWindow
}

func (f *fakeWindowRepo) ListAll(_ context.Context) ([]*domain.AvailabilityWindow, error) {
	return f.windows, nil
}

func (f *fakeWindowRepo) ReplaceAll(_ context.Context, windows []*domain.AvailabilityWindow) ([]*domain.AvailabilityWindow, error) {
	f.replaced = windows
	saved := make([]*domain.AvailabilityWindow, len(windows))
	for i, w := range windows {
		copied := *w
		copied.ID = int64(i + 1)
		saved[i] = &copied
	}
	return saved, nil
}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakeLogger struct{}

func (fakeLogger) Info(format string, v ...interface{})  {}
func (fakeLogger) Warn(format string, v ...interface{})  {}
func (fakeLogger) Error(format string, v ...interface{}) {}

func TestGetTemplate(t *testing.T) {
	repo := &fakeWindowRepo{windows: []*domain.AvailabilityWindow{
		{ID: 1, DayOfWeek: 1, StartTime: "09:00", EndTime: "18:00", IsAvailable: true},
		{ID: 2, DayOfWeek: 6, StartTime: "10:00", EndTime: "14:00", IsAvailable: false},
	}}
	svc := NewService(repo, &fakeTxManager{}, fakeLogger{})

	resp, err := svc.GetTemplate(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Windows, 2)
	assert.Equal(t, "09:00", resp.Windows[0].StartTime)
	assert.False(t, resp.Windows[1].IsAvailable)
}

func TestReplaceTemplate(t *testing.T) {
	repo := &fakeWindowRepo{}
	tx := &fakeTxManager{}
	svc := NewService(repo, tx, fakeLogger{})

	resp, err := svc.ReplaceTemplate(context.Background(), &models.ReplaceTemplateRequest{
		Windows: []models.WindowInput{
			{DayOfWeek: 1, StartTime: "09:00", EndTime: "18:00", IsAvailable: true},
			{DayOfWeek: 2, StartTime: "09:00", EndTime: "18:00", IsAvailable: true},
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.Windows, 2)
	assert.Equal(t, int64(1), resp.Windows[0].ID)

	assert.Equal(t, 1, tx.calls)
	require.Len(t, repo.replaced, 2)
}

func TestReplaceTemplate_InvalidWindows(t *testing.T) {
	tests := []struct {
		name   string
		window models.WindowInput
	}{
		{name: "day of week out of range", window: models.WindowInput{DayOfWeek: 7, StartTime: "09:00", EndTime: "18:00"}},
		{name: "malformed start time", window: models.WindowInput{DayOfWeek: 1, StartTime: "9am", EndTime: "18:00"}},
		{name: "start not before end", window: models.WindowInput{DayOfWeek: 1, StartTime: "18:00", EndTime: "09:00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeWindowRepo{}
			tx := &fakeTxManager{}
			svc := NewService(repo, tx, fakeLogger{})

			_, err := svc.ReplaceTemplate(context.Background(), &models.ReplaceTemplateRequest{
				Windows: []models.WindowInput{tt.window},
			})
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Zero(t, tx.calls)
		})
	}
}
