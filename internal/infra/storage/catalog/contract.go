package catalog

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/dbmetrics"
)

// DBExecutor переиспользуем интерфейс из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Loader источник каталога, который читается один раз при старте
type Loader interface {
	LoadItems(ctx context.Context) ([]domain.RentalItem, error)
	LoadCategories(ctx context.Context) (domain.Taxonomy, error)
}
