package search_items

import (
	"cmp"
	"slices"
	"strings"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// FilterAndSort отбирает элементы каталога по фильтрам и поисковой строке и сортирует результат.
// Входной срез не изменяется; сортировка стабильная.
func FilterAndSort(items []domain.RentalItem, filters domain.FilterOptions, searchQuery string) []domain.RentalItem {
	query := strings.ToLower(searchQuery)

	result := make([]domain.RentalItem, 0, len(items))
	for i := range items {
		if matches(&items[i], &filters, query) {
			result = append(result, items[i])
		}
	}

	sortItems(result, filters.SortBy)
	return result
}

// matches проверяет условия по порядку и выходит на первом несовпадении.
// lowerQuery уже приведена к нижнему регистру.
func matches(item *domain.RentalItem, filters *domain.FilterOptions, lowerQuery string) bool {
	if filters.Category != nil && item.Category != *filters.Category {
		return false
	}

	if filters.Subcategory != nil && item.Subcategory != *filters.Subcategory {
		return false
	}

	if filters.Rating != nil && item.AverageRating < *filters.Rating {
		return false
	}

	if !filters.PriceRange.Contains(item.Price) {
		return false
	}

	if lowerQuery == "" {
		return true
	}

	return containsFold(item.Title, lowerQuery) ||
		containsFold(item.Description, lowerQuery) ||
		containsFold(item.Subcategory, lowerQuery) ||
		containsFold(item.Location.City, lowerQuery)
}

func containsFold(field, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(field), lowerQuery)
}

// sortItems сортирует на месте. distance и newest сохраняют исходный порядок:
// расстояние пока не вычисляется, а каталог уже отдается от новых к старым.
func sortItems(items []domain.RentalItem, key domain.SortKey) {
	switch key {
	case domain.SortPriceLow:
		slices.SortStableFunc(items, func(a, b domain.RentalItem) int {
			return cmp.Compare(a.Price, b.Price)
		})
	case domain.SortPriceHigh:
		slices.SortStableFunc(items, func(a, b domain.RentalItem) int {
			return cmp.Compare(b.Price, a.Price)
		})
	case domain.SortRating:
		slices.SortStableFunc(items, func(a, b domain.RentalItem) int {
			return cmp.Compare(b.AverageRating, a.AverageRating)
		})
	}
}

// priceBounds минимальная и максимальная цена по всему каталогу (для слайдера цены)
func priceBounds(items []domain.RentalItem) domain.PriceRange {
	if len(items) == 0 {
		return domain.DefaultPriceRange()
	}

	bounds := domain.PriceRange{Min: items[0].Price, Max: items[0].Price}
	for _, item := range items[1:] {
		if item.Price < bounds.Min {
			bounds.Min = item.Price
		}
		if item.Price > bounds.Max {
			bounds.Max = item.Price
		}
	}
	return bounds
}
