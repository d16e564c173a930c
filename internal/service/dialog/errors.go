package dialog

import "errors"

var (
	// ErrItemNotFound возвращается, когда элемент каталога не найден
	ErrItemNotFound = errors.New("item not found")

	// ErrDialogNotFound возвращается, когда диалог не найден или истек
	ErrDialogNotFound = errors.New("dialog not found")

	// ErrAccessDenied возвращается, когда диалог принадлежит другому пользователю
	ErrAccessDenied = errors.New("access denied")

	// ErrTransitionRejected возвращается, когда выбор недопустим в текущем состоянии диалога
	ErrTransitionRejected = errors.New("dialog transition rejected")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
