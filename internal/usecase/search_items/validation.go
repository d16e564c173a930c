package search_items

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if utf8.RuneCountInString(req.Query) > domain.MaxQueryLength {
		return fmt.Errorf("%w: query is longer than %d characters", ErrInvalidInput, domain.MaxQueryLength)
	}

	for name, v := range map[string]*float64{
		"minPrice": req.MinPrice,
		"maxPrice": req.MaxPrice,
		"rating":   req.Rating,
		"radius":   req.Radius,
	} {
		if v != nil && !isFinite(*v) {
			return fmt.Errorf("%w: %s must be a finite number", ErrInvalidInput, name)
		}
	}

	if req.MinPrice != nil && *req.MinPrice < 0 {
		return fmt.Errorf("%w: minPrice must not be negative", ErrInvalidInput)
	}

	if req.MaxPrice != nil && *req.MaxPrice < 0 {
		return fmt.Errorf("%w: maxPrice must not be negative", ErrInvalidInput)
	}

	if req.MinPrice != nil && req.MaxPrice != nil && *req.MinPrice > *req.MaxPrice {
		return fmt.Errorf("%w: minPrice must not exceed maxPrice", ErrInvalidInput)
	}

	if req.Rating != nil && (*req.Rating < domain.MinRating || *req.Rating > domain.MaxRating) {
		return fmt.Errorf("%w: rating must be between %d and %d", ErrInvalidInput, domain.MinRating, domain.MaxRating)
	}

	if req.Radius != nil && *req.Radius < 0 {
		return fmt.Errorf("%w: radius must not be negative", ErrInvalidInput)
	}

	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// validateCategory проверяет, что категория есть в таксономии
func validateCategory(taxonomy domain.Taxonomy, category string) error {
	if _, ok := taxonomy.Find(domain.Category(category)); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	return nil
}

// toFilterOptions собирает фильтры, подставляя значения по умолчанию
func toFilterOptions(req *Request) domain.FilterOptions {
	filters := domain.DefaultFilterOptions()

	if req.Category != "" {
		category := domain.Category(req.Category)
		filters.Category = &category
	}
	if req.Subcategory != "" {
		subcategory := req.Subcategory
		filters.Subcategory = &subcategory
	}
	if req.MinPrice != nil {
		filters.PriceRange.Min = *req.MinPrice
	}
	if req.MaxPrice != nil {
		filters.PriceRange.Max = *req.MaxPrice
	}
	// нижняя граница выше дефолтной верхней - верхняя граница снимается
	if req.MaxPrice == nil && filters.PriceRange.Min > filters.PriceRange.Max {
		filters.PriceRange.Max = math.MaxFloat64
	}
	filters.Rating = req.Rating
	if location := strings.TrimSpace(req.Location); location != "" {
		filters.Location = &location
	}
	filters.Radius = req.Radius
	filters.SortBy = domain.ParseSortKey(req.SortBy)

	return filters
}
