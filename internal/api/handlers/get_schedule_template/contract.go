package get_schedule_template

import (
	"context"

	"github.com/glossbook/scheduling-service/internal/service/schedule/models"
)

type ScheduleService interface {
	GetTemplate(ctx context.Context) (*models.TemplateResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
