package dialog

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// DialogStore хранилище сессий диалогов бронирования
type DialogStore interface {
	Save(ctx context.Context, d domain.BookingDialog) error
	Get(ctx context.Context, id string) (domain.BookingDialog, error)
	Update(ctx context.Context, id string, fn func(domain.BookingDialog) (domain.BookingDialog, error)) (domain.BookingDialog, error)
	Delete(ctx context.Context, id string) error
}

// ItemSource источник элементов каталога
type ItemSource interface {
	GetItem(ctx context.Context, id string) (*domain.RentalItem, error)
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

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time { return time.Now() }
