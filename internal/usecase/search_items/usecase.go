package search_items

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-RentalService/internal/service/querystate"
)

// UseCase use case поиска по каталогу аренды
type UseCase struct {
	catalog  CatalogSource
	observer SearchObserver
	logger   Logger
}

// NewUseCase создает новый экземпляр use case.
// observer может быть nil, если метрики выключены
func NewUseCase(catalog CatalogSource, observer SearchObserver, logger Logger) *UseCase {
	if observer == nil {
		observer = nopObserver{}
	}
	return &UseCase{
		catalog:  catalog,
		observer: observer,
		logger:   logger,
	}
}

// Execute выполняет поиск: фильтрация, сортировка, подготовка состояния для адресной строки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	req.Category = strings.TrimSpace(req.Category)

	uc.logger.Info("SearchItems: q=%q, category=%q, subcategory=%q, sort=%q",
		req.Query, req.Category, req.Subcategory, req.SortBy)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SearchItems: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем категорию по таксономии
	if req.Category != "" {
		taxonomy, err := uc.catalog.ListCategories(ctx)
		if err != nil {
			uc.logger.Error("SearchItems: failed to get categories: %v", err)
			return nil, fmt.Errorf("%w: failed to get categories: %v", ErrInternal, err)
		}
		if err := validateCategory(taxonomy, req.Category); err != nil {
			uc.logger.Warn("SearchItems: %v", err)
			return nil, err
		}
	}

	// 3. Получаем каталог
	items, err := uc.catalog.ListItems(ctx)
	if err != nil {
		uc.logger.Error("SearchItems: failed to get items: %v", err)
		return nil, fmt.Errorf("%w: failed to get items: %v", ErrInternal, err)
	}

	// 4. Фильтруем и сортируем
	filters := toFilterOptions(req)
	found := FilterAndSort(items, filters, req.Query)

	uc.observer.ObserveSearch(len(found))
	uc.logger.Info("SearchItems: found %d of %d items", len(found), len(items))

	return &Response{
		Items:       found,
		Total:       len(found),
		NoResults:   len(found) == 0,
		PriceBounds: priceBounds(items),
		Filters:     filters,
		Query:       req.Query,
		ShareQuery:  querystate.Encode(querystate.State{Query: req.Query, Category: req.Category}),
	}, nil
}
