package toggle_favorite

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	"github.com/m04kA/SMC-RentalService/internal/service/favorites"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgInvalidItemID = "некорректный ID элемента"
)

type Handler struct {
	service FavoritesService
	logger  Logger
}

func NewHandler(service FavoritesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/favorites/{itemId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	itemID := mux.Vars(r)["itemId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /favorites/{itemId} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.Toggle(r.Context(), userID, itemID)
	if err != nil {
		if errors.Is(err, favorites.ErrInvalidInput) {
			h.logger.Warn("PUT /favorites/{itemId} - Invalid item ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidItemID)
			return
		}
		h.logger.Error("PUT /favorites/{itemId} - Failed to toggle favorite: user_id=%d, item_id=%s, error=%v",
			userID, itemID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
