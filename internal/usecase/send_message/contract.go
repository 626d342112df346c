package send_message

import (
	"context"

	"github.com/m04kA/SMC-AssistantService/internal/domain"
	"github.com/m04kA/SMC-AssistantService/internal/service/ragindex"
)

// SessionStore интерфейс хранилища сессий
type SessionStore interface {
	Get(ctx context.Context, id string) (*domain.Session, error)
	Save(ctx context.Context, session *domain.Session) error
}

// LanguageModel интерфейс языковой модели для свободного диалога
type LanguageModel interface {
	Invoke(ctx context.Context, prompt string) (string, error)
}

// Answerer интерфейс ответа на вопрос по загруженным документам
type Answerer interface {
	Execute(ctx context.Context, sessionID, query string) (string, error)
}

// IndexRegistry интерфейс реестра поисковых индексов
type IndexRegistry interface {
	Get(sessionID string) *ragindex.Index
	Delete(sessionID string)
}

// Metrics интерфейс метрик диалога
type Metrics interface {
	RecordChatTurn(route string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
