package delete_blocked_range

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/glossbook/scheduling-service/internal/api/handlers"
	"github.com/glossbook/scheduling-service/internal/service/blockedranges"
)

const (
	msgInvalidRangeID = "некорректный ID блокировки"
	msgNotFound       = "блокировка не найдена"
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

// Handle DELETE /api/v1/admin/blocked-ranges/{rangeId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	rangeID, err := strconv.ParseInt(vars["rangeId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /admin/blocked-ranges/{id} - Invalid range ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRangeID)
		return
	}

	if err := h.service.Delete(r.Context(), rangeID); err != nil {
		switch {
		case errors.Is(err, blockedranges.ErrBlockedRangeNotFound):
			h.logger.Warn("DELETE /admin/blocked-ranges/{id} - Range not found: range_id=%d", rangeID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /admin/blocked-ranges/{id} - Failed: range_id=%d, error=%v", rangeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/blocked-ranges/{id} - Range deleted: range_id=%d", rangeID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
