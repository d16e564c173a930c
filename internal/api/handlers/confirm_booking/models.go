package confirm_booking

import (
	bookingModels "github.com/m04kA/SMC-RentalService/internal/service/bookings/models"
	dialogModels "github.com/m04kA/SMC-RentalService/internal/service/dialog/models"
	confirmBooking "github.com/m04kA/SMC-RentalService/internal/usecase/confirm_booking"
)

// ConfirmResponse HTTP response model: созданное бронирование и диалог со сброшенным выбором
type ConfirmResponse struct {
	Booking *bookingModels.BookingResponse `json:"booking"`
	Dialog  *dialogModels.DialogResponse   `json:"dialog"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *confirmBooking.Response) *ConfirmResponse {
	return &ConfirmResponse{
		Booking: bookingModels.FromDomainBooking(resp.Booking),
		Dialog:  dialogModels.FromDomainDialog(resp.Dialog, nil),
	}
}
