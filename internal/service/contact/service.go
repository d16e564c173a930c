package contact

import (
	"context"
	"errors"
	"fmt"

	catalogRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-RentalService/internal/integrations/ownerservice"
	"github.com/m04kA/SMC-RentalService/internal/service/contact/models"
)

// Service передает владельцу запрос на связь от пользователя
type Service struct {
	items  ItemSource
	owners OwnerServiceClient
	logger Logger
}

// NewService создает новый экземпляр сервиса
func NewService(items ItemSource, owners OwnerServiceClient, logger Logger) *Service {
	return &Service{
		items:  items,
		owners: owners,
		logger: logger,
	}
}

// ContactOwner отправляет {ownerId, itemId, userId} в сервис владельцев
func (s *Service) ContactOwner(ctx context.Context, userID int64, itemID string) (*models.ContactResponse, error) {
	s.logger.Info("ContactOwner: user=%d, item=%s", userID, itemID)

	item, err := s.items.GetItem(ctx, itemID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrItemNotFound) {
			s.logger.Warn("ContactOwner: item id=%s not found", itemID)
			return nil, ErrItemNotFound
		}
		s.logger.Error("ContactOwner: failed to get item id=%s: %v", itemID, err)
		return nil, fmt.Errorf("%w: ContactOwner - get item: %v", ErrInternal, err)
	}

	delivered, err := s.owners.SendContactRequest(ctx, ownerservice.ContactRequest{
		OwnerID: item.Owner.ID,
		ItemID:  item.ID,
		UserID:  userID,
	})
	if err != nil {
		s.logger.Error("ContactOwner: failed to contact owner=%s for item=%s: %v", item.Owner.ID, item.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrOwnerUnavailable, err)
	}

	return &models.ContactResponse{
		ItemID:        item.ID,
		OwnerID:       item.Owner.ID,
		OwnerName:     item.Owner.Name,
		OwnerVerified: item.Owner.Verified,
		Delivered:     delivered,
	}, nil
}
