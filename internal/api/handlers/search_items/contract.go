package search_items

import (
	"context"

	searchItems "github.com/m04kA/SMC-RentalService/internal/usecase/search_items"
)

type SearchUseCase interface {
	Execute(ctx context.Context, req *searchItems.Request) (*searchItems.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
