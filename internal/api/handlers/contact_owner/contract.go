package contact_owner

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/service/contact/models"
)

type ContactService interface {
	ContactOwner(ctx context.Context, userID int64, itemID string) (*models.ContactResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
