package send_message

import (
	"context"

	sendMessage "github.com/m04kA/SMC-AssistantService/internal/usecase/send_message"
)

type SendMessageUseCase interface {
	Execute(ctx context.Context, sessionID, message string) (*sendMessage.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
