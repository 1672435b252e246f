package update_schedule_template

import (
	"context"

	"github.com/glossbook/scheduling-service/internal/service/schedule/models"
)

type ScheduleService interface {
	ReplaceTemplate(ctx context.Context, req *models.ReplaceTemplateRequest) (*models.TemplateResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
