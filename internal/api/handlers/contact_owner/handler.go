package contact_owner

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	"github.com/m04kA/SMC-RentalService/internal/service/contact"
)

const (
	msgMissingUserID    = "отсутствует ID пользователя"
	msgItemNotFound     = "элемент каталога не найден"
	msgOwnerUnavailable = "не удалось связаться с владельцем, попробуйте позже"
)

type Handler struct {
	service ContactService
	logger  Logger
}

func NewHandler(service ContactService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/items/{itemId}/contact
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	itemID := mux.Vars(r)["itemId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /items/{id}/contact - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.ContactOwner(r.Context(), userID, itemID)
	if err != nil {
		switch {
		case errors.Is(err, contact.ErrItemNotFound):
			h.logger.Warn("POST /items/{id}/contact - Item not found: item_id=%s", itemID)
			handlers.RespondNotFound(w, msgItemNotFound)

		case errors.Is(err, contact.ErrOwnerUnavailable):
			h.logger.Warn("POST /items/{id}/contact - Owner service unavailable: item_id=%s, error=%v", itemID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgOwnerUnavailable)

		default:
			h.logger.Error("POST /items/{id}/contact - Failed to contact owner: item_id=%s, error=%v", itemID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /items/{id}/contact - Contact request accepted: item_id=%s, user_id=%d, delivered=%t",
		itemID, userID, result.Delivered)
	handlers.RespondJSON(w, http.StatusAccepted, result)
}
