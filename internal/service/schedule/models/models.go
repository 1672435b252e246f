package models

import (
	"github.com/glossbook/scheduling-service/internal/domain"
	"github.com/glossbook/scheduling-service/pkg/types"
)

// Request модели

// WindowInput одно окно в запросе на замену шаблона
type WindowInput struct {
	DayOfWeek   int    `json:"dayOfWeek"` // 0-6, 0 = воскресенье
	StartTime   string `json:"startTime"` // "09:00"
	EndTime     string `json:"endTime"`   // "18:00"
	IsAvailable bool   `json:"isAvailable"`
}

// ReplaceTemplateRequest запрос на замену еженедельного шаблона целиком
type ReplaceTemplateRequest struct {
	Windows []WindowInput `json:"windows"`
}

// ToDomainWindows конвертирует входные окна в domain модели
func (r *ReplaceTemplateRequest) ToDomainWindows() []*domain.AvailabilityWindow {
	windows := make([]*domain.AvailabilityWindow, len(r.Windows))
	for i, w := range r.Windows {
		windows[i] = &domain.AvailabilityWindow{
			DayOfWeek:   w.DayOfWeek,
			StartTime:   types.TimeString(w.StartTime),
			EndTime:     types.TimeString(w.EndTime),
			IsAvailable: w.IsAvailable,
		}
	}
	return windows
}

// Response модели

// WindowResponse ответ с данными окна шаблона
type WindowResponse struct {
	ID          int64  `json:"id"`
	DayOfWeek   int    `json:"dayOfWeek"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	IsAvailable bool   `json:"isAvailable"`
}

// TemplateResponse ответ с еженедельным шаблоном доступности
type TemplateResponse struct {
	Windows []WindowResponse `json:"windows"`
}

// FromDomainWindows конвертирует domain модели в DTO
func FromDomainWindows(windows []*domain.AvailabilityWindow) *TemplateResponse {
	resp := &TemplateResponse{
		Windows: make([]WindowResponse, len(windows)),
	}
	for i, w := range windows {
		resp.Windows[i] = WindowResponse{
			ID:          w.ID,
			DayOfWeek:   w.DayOfWeek,
			StartTime:   w.StartTime.String(),
			EndTime:     w.EndTime.String(),
			IsAvailable: w.IsAvailable,
		}
	}
	return resp
}
