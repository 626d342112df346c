package sessions

import (
	"context"

	"github.com/m04kA/SMC-AssistantService/internal/domain"
)

// SessionStore интерфейс хранилища сессий
type SessionStore interface {
	Get(ctx context.Context, id string) (*domain.Session, error)
	Save(ctx context.Context, session *domain.Session) error
	Delete(ctx context.Context, id string) error
}

// IndexRegistry интерфейс реестра поисковых индексов сессий
type IndexRegistry interface {
	Delete(sessionID string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
