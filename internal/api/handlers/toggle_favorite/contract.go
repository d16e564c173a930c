package toggle_favorite

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/service/favorites/models"
)

type FavoritesService interface {
	Toggle(ctx context.Context, userID int64, itemID string) (*models.ToggleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
