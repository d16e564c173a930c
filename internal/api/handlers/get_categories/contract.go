package get_categories

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

type CategorySource interface {
	ListCategories(ctx context.Context) (domain.Taxonomy, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
