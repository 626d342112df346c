// Package answer_question ответ на вопрос пользователя по загруженным документам
// Классическая схема retrieval-augmented generation: эмбеддинг вопроса,
// поиск ближайших фрагментов в индексе сессии, генерация ответа по контексту
package answer_question

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-AssistantService/internal/domain"
)

// NoDocumentsMessage ответ пользователю, когда документы еще не загружены
// Модель в этом случае не вызывается
const NoDocumentsMessage = "No documents uploaded yet. Please upload PDFs first."

const promptTemplate = `You are a helpful assistant answering questions based on the provided context.

Context:
%s

Question: %s

Answer clearly and concisely. If the answer is not in the context, say you are not sure.`

// UseCase use case для ответа на вопрос по документам
type UseCase struct {
	llm      LanguageModel
	registry IndexRegistry
	topK     int
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(llm LanguageModel, registry IndexRegistry, topK int, logger Logger) *UseCase {
	if topK <= 0 {
		topK = domain.DefaultTopK
	}
	return &UseCase{
		llm:      llm,
		registry: registry,
		topK:     topK,
		logger:   logger,
	}
}

// Execute отвечает на вопрос по документам сессии
// Пустой результат поиска - не ошибка: модель получает пустой контекст
// и сама сообщает, что ответа в документах нет
func (uc *UseCase) Execute(ctx context.Context, sessionID, query string) (string, error) {
	index := uc.registry.Get(sessionID)
	if index == nil {
		uc.logger.Info("AnswerQuestion: no index for session %s, asking to upload documents", sessionID)
		return NoDocumentsMessage, nil
	}

	embedding, err := uc.llm.Embed(ctx, query)
	if err != nil {
		uc.logger.Error("AnswerQuestion: failed to embed query for session %s: %v", sessionID, err)
		return "", fmt.Errorf("embed query: %w", err)
	}

	results, err := index.Search(ctx, embedding, uc.topK)
	if err != nil {
		uc.logger.Error("AnswerQuestion: search failed for session %s: %v", sessionID, err)
		return "", fmt.Errorf("search index: %w", err)
	}

	passages := make([]string, 0, len(results))
	for _, result := range results {
		passages = append(passages, result.Chunk.Content)
	}

	prompt := fmt.Sprintf(promptTemplate, strings.Join(passages, "\n\n"), query)

	answer, err := uc.llm.Invoke(ctx, prompt)
	if err != nil {
		uc.logger.Error("AnswerQuestion: generation failed for session %s: %v", sessionID, err)
		return "", fmt.Errorf("generate answer: %w", err)
	}

	uc.logger.Info("AnswerQuestion: answered for session %s using %d passages", sessionID, len(passages))
	return answer, nil
}
