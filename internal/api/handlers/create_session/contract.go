package create_session

import (
	"context"

	"github.com/m04kA/SMC-AssistantService/internal/domain"
)

type SessionService interface {
	Create(ctx context.Context) (*domain.Session, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
