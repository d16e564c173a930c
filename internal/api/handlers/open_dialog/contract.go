package open_dialog

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/service/dialog/models"
)

type DialogService interface {
	Open(ctx context.Context, req *models.OpenDialogRequest) (*models.DialogResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
