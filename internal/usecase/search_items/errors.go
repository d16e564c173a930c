package search_items

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных параметрах поиска
	ErrInvalidInput = errors.New("search_items: invalid input data")

	// ErrUnknownCategory возвращается, когда категории нет в таксономии
	ErrUnknownCategory = errors.New("search_items: unknown category")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("search_items: internal error")
)
