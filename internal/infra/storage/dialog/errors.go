package dialog

import "errors"

var (
	// ErrDialogNotFound возвращается, когда сессия диалога не найдена или истекла
	ErrDialogNotFound = errors.New("dialog.repository: dialog not found")
)
