package favorites

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// FavoritesStore хранилище избранного пользователей
type FavoritesStore interface {
	Toggle(ctx context.Context, userID int64, itemID string) (bool, error)
	List(ctx context.Context, userID int64) ([]string, error)
}

// ItemSource источник элементов каталога
type ItemSource interface {
	GetItem(ctx context.Context, id string) (*domain.RentalItem, error)
}

// ToggleObserver учитывает переключения избранного в метриках
type ToggleObserver interface {
	ObserveFavoriteToggled(added bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type nopObserver struct{}

func (nopObserver) ObserveFavoriteToggled(bool) {}
