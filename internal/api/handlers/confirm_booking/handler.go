package confirm_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	confirmBooking "github.com/m04kA/SMC-RentalService/internal/usecase/confirm_booking"
)

const (
	msgMissingUserID  = "отсутствует ID пользователя"
	msgNotFound       = "диалог бронирования не найден или истек"
	msgForbidden      = "доступ запрещен"
	msgDateNotChosen  = "для подтверждения нужно выбрать дату"
	msgDateExpired    = "выбранная дата больше недоступна, выберите другую"
	msgInvalidRequest = "некорректный запрос"
)

type Handler struct {
	useCase ConfirmBookingUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/dialogs/{dialogId}/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dialogID := mux.Vars(r)["dialogId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /dialogs/{id}/confirm - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &confirmBooking.Request{
		UserID:   userID,
		DialogID: dialogID,
	})
	if err != nil {
		switch {
		case errors.Is(err, confirmBooking.ErrInvalidInput):
			h.logger.Warn("POST /dialogs/{id}/confirm - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		case errors.Is(err, confirmBooking.ErrDialogNotFound):
			h.logger.Warn("POST /dialogs/{id}/confirm - Dialog not found: dialog_id=%s", dialogID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, confirmBooking.ErrAccessDenied):
			h.logger.Warn("POST /dialogs/{id}/confirm - Access denied: dialog_id=%s, user_id=%d", dialogID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, confirmBooking.ErrDateNotChosen):
			h.logger.Warn("POST /dialogs/{id}/confirm - Date not chosen: dialog_id=%s", dialogID)
			handlers.RespondConflict(w, msgDateNotChosen)

		case errors.Is(err, confirmBooking.ErrDateNotBookable):
			h.logger.Warn("POST /dialogs/{id}/confirm - Date no longer bookable: dialog_id=%s", dialogID)
			handlers.RespondConflict(w, msgDateExpired)

		default:
			h.logger.Error("POST /dialogs/{id}/confirm - Failed to confirm booking: dialog_id=%s, user_id=%d, error=%v",
				dialogID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /dialogs/{id}/confirm - Booking created: booking_id=%s, dialog_id=%s, user_id=%d",
		result.Booking.ID, dialogID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
