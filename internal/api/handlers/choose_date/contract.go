package choose_date

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/service/dialog/models"
)

type DialogService interface {
	ChooseDate(ctx context.Context, req *models.ChooseDateRequest) (*models.DialogResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
