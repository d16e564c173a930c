package search_items

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// CatalogSource интерфейс источника данных каталога
type CatalogSource interface {
	ListItems(ctx context.Context) ([]domain.RentalItem, error)
	ListCategories(ctx context.Context) (domain.Taxonomy, error)
}

// SearchObserver получает итог каждого поиска (метрики)
type SearchObserver interface {
	ObserveSearch(found int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type nopObserver struct{}

func (nopObserver) ObserveSearch(int) {}
