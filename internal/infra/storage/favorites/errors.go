package favorites

import "errors"

var (
	// ErrStore возвращается при ошибке обращения к хранилищу избранного
	ErrStore = errors.New("favorites.repository: store error")
)
