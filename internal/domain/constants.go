package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Catalog defaults applied when a search request omits a value
const (
	DefaultMinPrice = 0
	DefaultMaxPrice = 100000
	DefaultSortKey  = SortNewest
)

// Business validation constants
const (
	MinRating      = 0
	MaxRating      = 5
	MaxQueryLength = 200
)
