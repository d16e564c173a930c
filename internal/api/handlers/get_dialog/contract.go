package get_dialog

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/service/dialog/models"
)

type DialogService interface {
	Get(ctx context.Context, userID int64, dialogID string) (*models.DialogResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
