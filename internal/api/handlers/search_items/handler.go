package search_items

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	searchItems "github.com/m04kA/SMC-RentalService/internal/usecase/search_items"
)

const (
	msgInvalidParams   = "некорректные параметры поиска"
	msgUnknownCategory = "неизвестная категория"
)

type Handler struct {
	useCase SearchUseCase
	logger  Logger
}

func NewHandler(useCase SearchUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/items
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := ToUseCaseRequest(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /items - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, searchItems.ErrInvalidInput):
			h.logger.Warn("GET /items - Invalid filters: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, searchItems.ErrUnknownCategory):
			h.logger.Warn("GET /items - Unknown category: %s", req.Category)
			handlers.RespondBadRequest(w, msgUnknownCategory)

		default:
			h.logger.Error("GET /items - Failed to search: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /items - Search completed: found=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
