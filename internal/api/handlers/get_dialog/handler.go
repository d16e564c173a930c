package get_dialog

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	"github.com/m04kA/SMC-RentalService/internal/service/dialog"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgNotFound      = "диалог бронирования не найден или истек"
	msgForbidden     = "доступ запрещен"
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

// Handle GET /api/v1/dialogs/{dialogId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dialogID := mux.Vars(r)["dialogId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /dialogs/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.Get(r.Context(), userID, dialogID)
	if err != nil {
		switch {
		case errors.Is(err, dialog.ErrDialogNotFound):
			h.logger.Warn("GET /dialogs/{id} - Dialog not found: dialog_id=%s", dialogID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, dialog.ErrAccessDenied):
			h.logger.Warn("GET /dialogs/{id} - Access denied: dialog_id=%s, user_id=%d", dialogID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /dialogs/{id} - Failed to get dialog: dialog_id=%s, error=%v", dialogID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
