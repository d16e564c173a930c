package get_item

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

type ItemSource interface {
	GetItem(ctx context.Context, id string) (*domain.RentalItem, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
