package answer_question

import (
	"context"

	"github.com/m04kA/SMC-AssistantService/internal/service/ragindex"
)

// LanguageModel интерфейс языковой модели
type LanguageModel interface {
	Invoke(ctx context.Context, prompt string) (string, error)
	Embed(ctx context.Context, text string) ([]float32, error)
}

// IndexRegistry интерфейс реестра поисковых индексов
// Get возвращает nil, если документы в сессию не загружались
type IndexRegistry interface {
	Get(sessionID string) *ragindex.Index
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
