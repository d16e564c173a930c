package get_categories

import "github.com/m04kA/SMC-RentalService/internal/domain"

// CategoriesResponse HTTP response model
type CategoriesResponse struct {
	Categories domain.Taxonomy `json:"categories"`
}
