package choose_time_slot

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
	msgInvalidRequestBody = "некорректное тело запроса, ожидается время начала HH:MM"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgNotFound           = "диалог бронирования не найден или истек"
	msgForbidden          = "доступ запрещен"
	msgSlotRejected       = "временной слот недоступен или дата не выбрана"
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

// Handle PUT /api/v1/dialogs/{dialogId}/time-slot
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dialogID := mux.Vars(r)["dialogId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /dialogs/{id}/time-slot - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req ChooseTimeSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /dialogs/{id}/time-slot - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.ChooseTimeSlot(r.Context(), &models.ChooseTimeSlotRequest{
		UserID:    userID,
		DialogID:  dialogID,
		StartTime: req.StartTime,
	})
	if err != nil {
		switch {
		case errors.Is(err, dialog.ErrInvalidInput):
			h.logger.Warn("PUT /dialogs/{id}/time-slot - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, dialog.ErrDialogNotFound):
			h.logger.Warn("PUT /dialogs/{id}/time-slot - Dialog not found: dialog_id=%s", dialogID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, dialog.ErrAccessDenied):
			h.logger.Warn("PUT /dialogs/{id}/time-slot - Access denied: dialog_id=%s, user_id=%d", dialogID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, dialog.ErrTransitionRejected):
			h.logger.Warn("PUT /dialogs/{id}/time-slot - Slot rejected: dialog_id=%s, start=%s", dialogID, req.StartTime)
			handlers.RespondConflict(w, msgSlotRejected)

		default:
			h.logger.Error("PUT /dialogs/{id}/time-slot - Failed to choose slot: dialog_id=%s, error=%v", dialogID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /dialogs/{id}/time-slot - Slot chosen: dialog_id=%s, start=%s", dialogID, req.StartTime)
	handlers.RespondJSON(w, http.StatusOK, result)
}
