package open_dialog

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	"github.com/m04kA/SMC-RentalService/internal/service/dialog"
	"github.com/m04kA/SMC-RentalService/internal/service/dialog/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgItemNotFound       = "элемент каталога не найден"
)

type Handler struct {
	service DialogService
	logger  Logger
}

func NewHandler(service DialogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/dialogs
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /dialogs - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req OpenDialogRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /dialogs - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Open(r.Context(), &models.OpenDialogRequest{
		UserID: userID,
		ItemID: req.ItemID,
	})
	if err != nil {
		switch {
		case errors.Is(err, dialog.ErrItemNotFound):
			h.logger.Warn("POST /dialogs - Item not found: item_id=%s", req.ItemID)
			handlers.RespondNotFound(w, msgItemNotFound)

		case errors.Is(err, dialog.ErrInvalidInput):
			h.logger.Warn("POST /dialogs - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /dialogs - Failed to open dialog: user_id=%d, item_id=%s, error=%v",
				userID, req.ItemID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /dialogs - Dialog opened: dialog_id=%s, user_id=%d, item_id=%s",
		result.ID, userID, req.ItemID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
