package block_time_range

import (
	"time"

	"github.com/glossbook/scheduling-service/internal/domain"
	blockTimeRange "github.com/glossbook/scheduling-service/internal/usecase/block_time_range"
	"github.com/glossbook/scheduling-service/pkg/types"
)

// BlockTimeRangeRequest HTTP request model
type BlockTimeRangeRequest struct {
	StartDate string  `json:"startDate"` // "2025-10-15"
	EndDate   string  `json:"endDate"`   // "2025-10-17"
	StartTime string  `json:"startTime,omitempty"`
	EndTime   string  `json:"endTime,omitempty"`
	AllDay    bool    `json:"allDay"`
	Reason    *string `json:"reason,omitempty"`
}

// BlockedRangeResponse HTTP модель одной созданной однодневной блокировки
type BlockedRangeResponse struct {
	ID        int64   `json:"id"`
	Date      string  `json:"date"`
	StartTime string  `json:"startTime,omitempty"`
	EndTime   string  `json:"endTime,omitempty"`
	AllDay    bool    `json:"allDay"`
	Reason    *string `json:"reason,omitempty"`
}

// BlockTimeRangeResponse HTTP response model
type BlockTimeRangeResponse struct {
	Ranges []BlockedRangeResponse `json:"ranges"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BlockTimeRangeRequest) ToUseCaseRequest() (*blockTimeRange.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}

	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, err
	}

	req := &blockTimeRange.Request{
		StartDate: startDate,
		EndDate:   endDate,
		AllDay:    r.AllDay,
		Reason:    r.Reason,
	}

	if !r.AllDay {
		startTime, err := types.NewTimeStringFromString(r.StartTime)
		if err != nil {
			return nil, err
		}
		endTime, err := types.NewTimeStringFromString(r.EndTime)
		if err != nil {
			return nil, err
		}
		req.StartTime = startTime
		req.EndTime = endTime
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *blockTimeRange.Response) *BlockTimeRangeResponse {
	ranges := make([]BlockedRangeResponse, len(resp.Ranges))
	for i, br := range resp.Ranges {
		ranges[i] = BlockedRangeResponse{
			ID:     br.ID,
			Date:   br.Date.Format(domain.DateFormat),
			AllDay: br.AllDay,
			Reason: br.Reason,
		}
		if !br.AllDay {
			ranges[i].StartTime = br.StartTime.String()
			ranges[i].EndTime = br.EndTime.String()
		}
	}

	return &BlockTimeRangeResponse{Ranges: ranges}
}
