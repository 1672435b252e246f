package get_schedule_template

import (
	"net/http"

	"github.com/glossbook/scheduling-service/internal/api/handlers"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/schedule-template
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetTemplate(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/schedule-template - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/schedule-template - %d windows returned", len(result.Windows))
	handlers.RespondJSON(w, http.StatusOK, result)
}
