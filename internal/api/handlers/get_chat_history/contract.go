package get_chat_history

import (
	"context"

	"github.com/m04kA/SMC-AssistantService/internal/domain"
)

type SessionService interface {
	History(ctx context.Context, id string) ([]domain.ChatMessage, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
