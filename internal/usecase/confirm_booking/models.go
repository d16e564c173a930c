package confirm_booking

import "github.com/m04kA/SMC-RentalService/internal/domain"

// Request модель запроса на подтверждение бронирования
type Request struct {
	UserID   int64  // ID пользователя из X-User-ID
	DialogID string // ID сессии диалога
}

// Response результат подтверждения
type Response struct {
	Booking *domain.Booking      // Запись, переданная в приемник
	Dialog  domain.BookingDialog // Диалог после подтверждения, выбор сброшен
}
