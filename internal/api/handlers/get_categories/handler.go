package get_categories

import (
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
)

type Handler struct {
	categories CategorySource
	logger     Logger
}

func NewHandler(categories CategorySource, logger Logger) *Handler {
	return &Handler{
		categories: categories,
		logger:     logger,
	}
}

// Handle GET /api/v1/categories
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	taxonomy, err := h.categories.ListCategories(r.Context())
	if err != nil {
		h.logger.Error("GET /categories - Failed to get categories: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, CategoriesResponse{Categories: taxonomy})
}
