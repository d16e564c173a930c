package close_dialog

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

// Handle DELETE /api/v1/dialogs/{dialogId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dialogID := mux.Vars(r)["dialogId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /dialogs/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.Close(r.Context(), userID, dialogID); err != nil {
		switch {
		case errors.Is(err, dialog.ErrDialogNotFound):
			h.logger.Warn("DELETE /dialogs/{id} - Dialog not found: dialog_id=%s", dialogID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, dialog.ErrAccessDenied):
			h.logger.Warn("DELETE /dialogs/{id} - Access denied: dialog_id=%s, user_id=%d", dialogID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /dialogs/{id} - Failed to close dialog: dialog_id=%s, error=%v", dialogID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /dialogs/{id} - Dialog closed: dialog_id=%s, user_id=%d", dialogID, userID)
	w.WriteHeader(http.StatusNoContent)
}
