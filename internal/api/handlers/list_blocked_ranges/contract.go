package list_blocked_ranges

import (
	"context"
	"time"

	"github.com/glossbook/scheduling-service/internal/service/blockedranges/models"
)

type BlockedRangeService interface {
	ListByPeriod(ctx context.Context, from, to time.Time) (*models.BlockedRangeListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
