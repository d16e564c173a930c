package confirm_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// DialogStore хранилище сессий диалогов бронирования
type DialogStore interface {
	Update(ctx context.Context, id string, fn func(domain.BookingDialog) (domain.BookingDialog, error)) (domain.BookingDialog, error)
}

// BookingSink приемник подтвержденных бронирований
type BookingSink interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// ConfirmObserver учитывает подтвержденные бронирования в метриках
type ConfirmObserver interface {
	ObserveBookingConfirmed(category string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

type nopObserver struct{}

func (nopObserver) ObserveBookingConfirmed(string) {}
