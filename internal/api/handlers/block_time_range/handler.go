package block_time_range

import (
	"errors"
	"net/http"

	"github.com/glossbook/scheduling-service/internal/api/handlers"
	blockTimeRange "github.com/glossbook/scheduling-service/internal/usecase/block_time_range"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgInvalidDateRange   = "конечная дата раньше начальной"
	msgInvalidTimes       = "некорректные границы времени блокировки"
	msgInvalidInput       = "некорректные данные блокировки"
)

type Handler struct {
	useCase BlockTimeRangeUseCase
	logger  Logger
}

func NewHandler(useCase BlockTimeRangeUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/blocked-ranges
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BlockTimeRangeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/blocked-ranges - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /admin/blocked-ranges - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, blockTimeRange.ErrInvalidDateRange):
			h.logger.Warn("POST /admin/blocked-ranges - Invalid date range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, blockTimeRange.ErrInvalidTimes):
			h.logger.Warn("POST /admin/blocked-ranges - Invalid block times: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTimes)

		case errors.Is(err, blockTimeRange.ErrInvalidInput):
			h.logger.Warn("POST /admin/blocked-ranges - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /admin/blocked-ranges - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/blocked-ranges - %d ranges created", len(result.Ranges))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
