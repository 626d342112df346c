package build_index

import (
	"context"

	"github.com/m04kA/SMC-AssistantService/internal/service/ragindex"
)

// Embedder интерфейс получения эмбеддингов для фрагментов текста
type Embedder interface {
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}

// TextExtractor интерфейс постраничного извлечения текста из документа
type TextExtractor interface {
	ExtractPages(data []byte) ([]string, error)
}

// IndexRegistry интерфейс реестра поисковых индексов
type IndexRegistry interface {
	Put(sessionID string, index *ragindex.Index)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
