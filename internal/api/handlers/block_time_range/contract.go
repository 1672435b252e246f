package block_time_range

import (
	"context"

	blockTimeRange "github.com/glossbook/scheduling-service/internal/usecase/block_time_range"
)

type BlockTimeRangeUseCase interface {
	Execute(ctx context.Context, req *blockTimeRange.Request) (*blockTimeRange.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
