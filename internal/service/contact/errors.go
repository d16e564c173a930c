package contact

import "errors"

var (
	// ErrItemNotFound возвращается, когда элемент каталога не найден
	ErrItemNotFound = errors.New("item not found")

	// ErrOwnerUnavailable возвращается, когда запрос не удалось передать владельцу
	ErrOwnerUnavailable = errors.New("owner service unavailable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
