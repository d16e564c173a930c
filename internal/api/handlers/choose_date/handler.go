package choose_date

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	"github.com/m04kA/SMC-RentalService/internal/service/dialog"
	"github.com/m04kA/SMC-RentalService/internal/service/dialog/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса, ожидается дата YYYY-MM-DD"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgNotFound           = "диалог бронирования не найден или истек"
	msgForbidden          = "доступ запрещен"
	msgDateNotBookable    = "выбранная дата недоступна для бронирования"
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

// Handle PUT /api/v1/dialogs/{dialogId}/date
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dialogID := mux.Vars(r)["dialogId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /dialogs/{id}/date - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req ChooseDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /dialogs/{id}/date - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.ChooseDate(r.Context(), &models.ChooseDateRequest{
		UserID:   userID,
		DialogID: dialogID,
		Date:     req.Date,
	})
	if err != nil {
		switch {
		case errors.Is(err, dialog.ErrInvalidInput):
			h.logger.Warn("PUT /dialogs/{id}/date - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, dialog.ErrDialogNotFound):
			h.logger.Warn("PUT /dialogs/{id}/date - Dialog not found: dialog_id=%s", dialogID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, dialog.ErrAccessDenied):
			h.logger.Warn("PUT /dialogs/{id}/date - Access denied: dialog_id=%s, user_id=%d", dialogID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, dialog.ErrTransitionRejected):
			h.logger.Warn("PUT /dialogs/{id}/date - Date rejected: dialog_id=%s, date=%s", dialogID, req.Date)
			handlers.RespondConflict(w, msgDateNotBookable)

		default:
			h.logger.Error("PUT /dialogs/{id}/date - Failed to choose date: dialog_id=%s, error=%v", dialogID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /dialogs/{id}/date - Date chosen: dialog_id=%s, date=%s", dialogID, req.Date)
	handlers.RespondJSON(w, http.StatusOK, result)
}
