package close_dialog

import "context"

type DialogService interface {
	Close(ctx context.Context, userID int64, dialogID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
