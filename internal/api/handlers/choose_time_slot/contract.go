package choose_time_slot

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/service/dialog/models"
)

type DialogService interface {
	ChooseTimeSlot(ctx context.Context, req *models.ChooseTimeSlotRequest) (*models.DialogResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
