package contact

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/integrations/ownerservice"
)

// ItemSource источник элементов каталога
type ItemSource interface {
	GetItem(ctx context.Context, id string) (*domain.RentalItem, error)
}

// OwnerServiceClient клиент сервиса владельцев
type OwnerServiceClient interface {
	SendContactRequest(ctx context.Context, contact ownerservice.ContactRequest) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
