package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/catalog"
)

// UseCase use case получения доступности элемента на дату
type UseCase struct {
	items    ItemSource
	resolver AvailabilityResolver
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(items ItemSource, resolver AvailabilityResolver, logger Logger) *UseCase {
	return &UseCase{
		items:    items,
		resolver: resolver,
		logger:   logger,
	}
}

// Execute выполняет use case получения доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: item=%s, date=%s", req.ItemID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем элемент каталога
	item, err := uc.items.GetItem(ctx, req.ItemID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrItemNotFound) {
			uc.logger.Warn("GetAvailability: item id=%s not found", req.ItemID)
			return nil, ErrItemNotFound
		}
		uc.logger.Error("GetAvailability: failed to get item id=%s: %v", req.ItemID, err)
		return nil, fmt.Errorf("%w: failed to get item: %v", ErrInternal, err)
	}

	// 3. Применяем правила дат и политику слотов категории
	resp := &Response{
		ItemID:      item.ID,
		Date:        req.Date,
		Past:        uc.resolver.IsPast(req.Date),
		Bookable:    uc.resolver.CanBook(item, req.Date),
		Granularity: domain.SlotPolicyFor(item.Category).Granularity(),
		TimeSlots:   []domain.TimeSlot{},
		BasePrice:   item.Price,
		PriceType:   item.PriceType,
	}

	if resp.Bookable {
		resp.TimeSlots = uc.resolver.TimeSlots(item, req.Date)
	}

	uc.logger.Info("GetAvailability: item=%s, date=%s, bookable=%t, slots=%d",
		item.ID, req.Date.Format(domain.DateFormat), resp.Bookable, len(resp.TimeSlots))

	return resp, nil
}
