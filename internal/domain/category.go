package domain

// Category is the top-level taxonomy tag of a rental item
type Category string

const (
	CategoryVehicles    Category = "vehicles"
	CategoryRealEstate  Category = "real_estate"
	CategoryElectronics Category = "electronics"
	CategoryPlaygrounds Category = "playgrounds"
	CategoryEventItems  Category = "event_items"
)

func (c Category) String() string {
	return string(c)
}

// CategoryConfig describes one taxonomy entry as shown in the storefront
type CategoryConfig struct {
	ID            Category `json:"id"`
	Name          string   `json:"name"`
	Icon          string   `json:"icon"`
	Subcategories []string `json:"subcategories"`
	Color         string   `json:"color"`
}

// HasSubcategory reports whether the subcategory belongs to this category (exact match)
func (c *CategoryConfig) HasSubcategory(sub string) bool {
	for _, s := range c.Subcategories {
		if s == sub {
			return true
		}
	}
	return false
}

// Taxonomy is the fixed category list supplied by the catalog data source
type Taxonomy []CategoryConfig

// Find returns the category config by id
func (t Taxonomy) Find(id Category) (*CategoryConfig, bool) {
	for i := range t {
		if t[i].ID == id {
			return &t[i], true
		}
	}
	return nil, false
}
