package confirm_booking

import "errors"

var (
	// ErrDialogNotFound возвращается, когда диалог не найден или истек
	ErrDialogNotFound = errors.New("dialog not found")

	// ErrAccessDenied возвращается, когда диалог принадлежит другому пользователю
	ErrAccessDenied = errors.New("access denied")

	// ErrDateNotChosen возвращается при подтверждении без выбранной даты
	ErrDateNotChosen = errors.New("date is not chosen")

	// ErrDateNotBookable возвращается, когда выбранная дата стала недоступной или прошедшей
	ErrDateNotBookable = errors.New("chosen date is no longer bookable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")

	errDialogChanged = errors.New("dialog changed after confirmation claim")
)
