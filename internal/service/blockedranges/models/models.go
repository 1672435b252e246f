package models

import (
	"github.com/glossbook/scheduling-service/internal/domain"
)

// Response модели

// BlockedRangeResponse ответ с данными однодневной блокировки
type BlockedRangeResponse struct {
	ID        int64   `json:"id"`
	Date      string  `json:"date"`                // "2025-10-15"
	StartTime string  `json:"startTime,omitempty"` // пусто для блокировок на весь день
	EndTime   string  `json:"endTime,omitempty"`
	AllDay    bool    `json:"allDay"`
	Reason    *string `json:"reason,omitempty"`
}

// BlockedRangeListResponse ответ со списком блокировок
type BlockedRangeListResponse struct {
	Ranges []BlockedRangeResponse `json:"ranges"`
}

// FromDomainBlockedRange конвертирует domain модель в DTO
func FromDomainBlockedRange(br *domain.BlockedRange) *BlockedRangeResponse {
	if br == nil {
		return nil
	}

	resp := &BlockedRangeResponse{
		ID:     br.ID,
		Date:   br.Date.Format(domain.DateFormat),
		AllDay: br.AllDay,
		Reason: br.Reason,
	}

	if !br.AllDay {
		resp.StartTime = br.StartTime.String()
		resp.EndTime = br.EndTime.String()
	}

	return resp
}

// FromDomainBlockedRangeList конвертирует список domain моделей в DTO
func FromDomainBlockedRangeList(ranges []*domain.BlockedRange) *BlockedRangeListResponse {
	resp := &BlockedRangeListResponse{
		Ranges: make([]BlockedRangeResponse, 0, len(ranges)),
	}

	for _, br := range ranges {
		if r := FromDomainBlockedRange(br); r != nil {
			resp.Ranges = append(resp.Ranges, *r)
		}
	}

	return resp
}
