package domain

// SortKey selects the ordering of the filtered catalog
type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortPriceLow  SortKey = "price_low"
	SortPriceHigh SortKey = "price_high"
	SortRating    SortKey = "rating"
	SortDistance  SortKey = "distance" // accepted, orders nothing yet
)

// ParseSortKey maps unknown or empty keys to the default
func ParseSortKey(s string) SortKey {
	switch k := SortKey(s); k {
	case SortNewest, SortPriceLow, SortPriceHigh, SortRating, SortDistance:
		return k
	default:
		return DefaultSortKey
	}
}

// PriceRange inclusive price bounds
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains checks Min <= price <= Max
func (r PriceRange) Contains(price float64) bool {
	return r.Min <= price && price <= r.Max
}

// DefaultPriceRange is used when the request does not bound the price
func DefaultPriceRange() PriceRange {
	return PriceRange{Min: DefaultMinPrice, Max: DefaultMaxPrice}
}

// FilterOptions user-selected constraints on the catalog
type FilterOptions struct {
	Category    *Category  `json:"category,omitempty"`
	Subcategory *string    `json:"subcategory,omitempty"`
	PriceRange  PriceRange `json:"priceRange"`
	Rating      *float64   `json:"rating,omitempty"`
	Location    *string    `json:"location,omitempty"` // declared, not used by filtering
	Radius      *float64   `json:"radius,omitempty"`   // declared, not used by filtering
	SortBy      SortKey    `json:"sortBy"`
}

// DefaultFilterOptions returns filters that match every item in the default price range
func DefaultFilterOptions() FilterOptions {
	return FilterOptions{
		PriceRange: DefaultPriceRange(),
		SortBy:     DefaultSortKey,
	}
}
