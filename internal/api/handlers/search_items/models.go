package search_items

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/service/querystate"
	searchItems "github.com/m04kA/SMC-RentalService/internal/usecase/search_items"
)

// Query параметры поиска, кроме q и category (их читает querystate)
const (
	paramSubcategory = "subcategory"
	paramMinPrice    = "minPrice"
	paramMaxPrice    = "maxPrice"
	paramRating      = "rating"
	paramLocation    = "location"
	paramRadius      = "radius"
	paramSort        = "sort"
)

// SearchResponse HTTP response model
type SearchResponse struct {
	Items       []domain.RentalItem  `json:"items"`
	Total       int                  `json:"total"`
	NoResults   bool                 `json:"noResults"`
	PriceBounds domain.PriceRange    `json:"priceBounds"`
	Filters     domain.FilterOptions `json:"filters"`
	Query       string               `json:"query"`
	ShareQuery  string               `json:"shareQuery"`
}

// ToUseCaseRequest собирает запрос use case из query параметров
func ToUseCaseRequest(values url.Values) (*searchItems.Request, error) {
	state := querystate.Decode(values)

	req := &searchItems.Request{
		Query:       state.Query,
		Category:    state.Category,
		Subcategory: values.Get(paramSubcategory),
		Location:    strings.TrimSpace(values.Get(paramLocation)),
		SortBy:      strings.TrimSpace(values.Get(paramSort)),
	}

	var err error
	if req.MinPrice, err = parseFloat(values, paramMinPrice); err != nil {
		return nil, err
	}
	if req.MaxPrice, err = parseFloat(values, paramMaxPrice); err != nil {
		return nil, err
	}
	if req.Rating, err = parseFloat(values, paramRating); err != nil {
		return nil, err
	}
	if req.Radius, err = parseFloat(values, paramRadius); err != nil {
		return nil, err
	}

	return req, nil
}

func parseFloat(values url.Values, name string) (*float64, error) {
	raw := strings.TrimSpace(values.Get(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("parameter %s: %w", name, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, fmt.Errorf("parameter %s: %q is not a finite number", name, raw)
	}
	return &v, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *searchItems.Response) *SearchResponse {
	return &SearchResponse{
		Items:       resp.Items,
		Total:       resp.Total,
		NoResults:   resp.NoResults,
		PriceBounds: resp.PriceBounds,
		Filters:     resp.Filters,
		Query:       resp.Query,
		ShareQuery:  resp.ShareQuery,
	}
}
