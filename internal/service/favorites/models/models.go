package models

import "github.com/m04kA/SMC-RentalService/internal/domain"

// ToggleResponse результат переключения избранного
type ToggleResponse struct {
	ItemID   string `json:"itemId"`
	Favorite bool   `json:"favorite"`
}

// FavoritesResponse избранное пользователя
type FavoritesResponse struct {
	ItemIDs []string            `json:"itemIds"`
	Items   []domain.RentalItem `json:"items"` // только элементы, которые есть в каталоге
}
