package get_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// ItemSource источник элементов каталога
type ItemSource interface {
	GetItem(ctx context.Context, id string) (*domain.RentalItem, error)
}

// AvailabilityResolver правила бронирования дат и слотов
type AvailabilityResolver interface {
	IsPast(date time.Time) bool
	CanBook(item *domain.RentalItem, date time.Time) bool
	TimeSlots(item *domain.RentalItem, date time.Time) []domain.TimeSlot
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
