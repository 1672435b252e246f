package list_blocked_ranges

import (
	"errors"
	"net/http"
	"time"

	"github.com/glossbook/scheduling-service/internal/api/handlers"
	"github.com/glossbook/scheduling-service/internal/domain"
	"github.com/glossbook/scheduling-service/internal/service/blockedranges"
)

const (
	msgMissingPeriod = "отсутствуют параметры from и to"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidPeriod = "конечная дата раньше начальной"
)

type Handler struct {
	service BlockedRangeService
	logger  Logger
}

func NewHandler(service BlockedRangeService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/blocked-ranges?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	fromStr := r.URL.Query().Get("from")
	toStr := r.URL.Query().Get("to")
	if fromStr == "" || toStr == "" {
		h.logger.Warn("GET /admin/blocked-ranges - Missing from/to parameters")
		handlers.RespondBadRequest(w, msgMissingPeriod)
		return
	}

	from, err := time.Parse(domain.DateFormat, fromStr)
	if err != nil {
		h.logger.Warn("GET /admin/blocked-ranges - Invalid from date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	to, err := time.Parse(domain.DateFormat, toStr)
	if err != nil {
		h.logger.Warn("GET /admin/blocked-ranges - Invalid to date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.ListByPeriod(r.Context(), from, to)
	if err != nil {
		switch {
		case errors.Is(err, blockedranges.ErrInvalidInput):
			h.logger.Warn("GET /admin/blocked-ranges - Invalid period: from=%s, to=%s", fromStr, toStr)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /admin/blocked-ranges - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/blocked-ranges - %d ranges returned: from=%s, to=%s",
		len(result.Ranges), fromStr, toStr)
	handlers.RespondJSON(w, http.StatusOK, result)
}
