package favorites

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-RentalService/internal/service/favorites/models"
)

// Service сервис избранного
type Service struct {
	store    FavoritesStore
	items    ItemSource
	observer ToggleObserver
	logger   Logger
}

// NewService создает новый экземпляр сервиса избранного.
// observer может быть nil, если метрики выключены
func NewService(store FavoritesStore, items ItemSource, observer ToggleObserver, logger Logger) *Service {
	if observer == nil {
		observer = nopObserver{}
	}
	return &Service{
		store:    store,
		items:    items,
		observer: observer,
		logger:   logger,
	}
}

// Toggle переключает элемент в избранном пользователя.
// Наличие элемента в каталоге не проверяется.
func (s *Service) Toggle(ctx context.Context, userID int64, itemID string) (*models.ToggleResponse, error) {
	s.logger.Info("Toggle: user=%d, item=%s", userID, itemID)

	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return nil, fmt.Errorf("%w: itemId is required", ErrInvalidInput)
	}

	added, err := s.store.Toggle(ctx, userID, itemID)
	if err != nil {
		s.logger.Error("Toggle: store error for user=%d, item=%s: %v", userID, itemID, err)
		return nil, fmt.Errorf("%w: Toggle - store error: %v", ErrInternal, err)
	}

	s.observer.ObserveFavoriteToggled(added)
	return &models.ToggleResponse{ItemID: itemID, Favorite: added}, nil
}

// List возвращает избранное пользователя вместе с карточками из каталога
func (s *Service) List(ctx context.Context, userID int64) (*models.FavoritesResponse, error) {
	s.logger.Info("List: user=%d", userID)

	ids, err := s.store.List(ctx, userID)
	if err != nil {
		s.logger.Error("List: store error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: List - store error: %v", ErrInternal, err)
	}

	items := make([]domain.RentalItem, 0, len(ids))
	for _, id := range ids {
		item, err := s.items.GetItem(ctx, id)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrItemNotFound) {
				continue
			}
			s.logger.Error("List: failed to get item id=%s: %v", id, err)
			return nil, fmt.Errorf("%w: List - get item: %v", ErrInternal, err)
		}
		items = append(items, *item)
	}

	s.logger.Info("List: user=%d has %d favorites, %d in catalog", userID, len(ids), len(items))
	return &models.FavoritesResponse{ItemIDs: ids, Items: items}, nil
}
