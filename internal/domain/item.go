package domain

// PriceType is the unit the item price is quoted in
type PriceType string

const (
	PriceHourly  PriceType = "hourly"
	PriceDaily   PriceType = "daily"
	PriceWeekly  PriceType = "weekly"
	PriceMonthly PriceType = "monthly"
)

// Coordinates geographic point of a listing
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Location where the item can be picked up or used
type Location struct {
	Address      string      `json:"address"`
	City         string      `json:"city"`
	Coordinates  Coordinates `json:"coordinates"`
	NearbyPlaces []string    `json:"nearbyPlaces,omitempty"`
}

// Owner reference of the listing
type Owner struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Phone    string `json:"phone,omitempty"`
	Verified bool   `json:"verified"`
}

// Rating single user review
type Rating struct {
	UserID  string  `json:"userId"`
	Rating  float64 `json:"rating"`
	Comment string  `json:"comment,omitempty"`
	Date    string  `json:"date"`
}

// RentalItem represents a rentable listing.
// Items are read-only snapshots supplied by the catalog data source.
type RentalItem struct {
	ID            string             `json:"id"`
	Title         string             `json:"title"`
	Description   string             `json:"description"`
	Category      Category           `json:"category"`
	Subcategory   string             `json:"subcategory"`
	Images        []string           `json:"images"`
	Price         float64            `json:"price"`
	PriceType     PriceType          `json:"priceType"`
	Location      Location           `json:"location"`
	Owner         Owner              `json:"owner"`
	Amenities     []string           `json:"amenities,omitempty"`
	Ratings       []Rating           `json:"ratings,omitempty"`
	AverageRating float64            `json:"averageRating"` // stored as supplied, never recomputed
	Availability  []AvailabilitySlot `json:"availability"`
	Verified      bool               `json:"verified"`
	TimeSlots     []TimeSlot         `json:"timeSlots,omitempty"` // flat list for day-granular categories
	CreatedAt     string             `json:"createdAt,omitempty"`
}

// AvailabilityFor returns the availability entry for the exact YYYY-MM-DD date
func (i *RentalItem) AvailabilityFor(date string) (AvailabilitySlot, bool) {
	for _, a := range i.Availability {
		if a.Date == date {
			return a, true
		}
	}
	return AvailabilitySlot{}, false
}

// PriceFor flat per-booking price: the slot price when the slot carries one, else the base price
func (i *RentalItem) PriceFor(slot *TimeSlot) float64 {
	if slot != nil && slot.HasPrice() {
		return *slot.Price
	}
	return i.Price
}
