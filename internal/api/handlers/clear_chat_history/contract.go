package clear_chat_history

import "context"

type SessionService interface {
	ClearHistory(ctx context.Context, id string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
