// Package build_index построение поискового индекса по загруженным PDF
// Текст каждого документа режется на перекрывающиеся фрагменты, фрагменты
// получают эмбеддинги одним batch-запросом, готовый индекс заменяет
// прежний индекс сессии целиком
package build_index

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-AssistantService/internal/domain"
	"github.com/m04kA/SMC-AssistantService/internal/integrations/gemini"
	"github.com/m04kA/SMC-AssistantService/internal/service/ragindex"
)

// UseCase use case построения индекса
type UseCase struct {
	extractor    TextExtractor
	embedder     Embedder
	registry     IndexRegistry
	chunkSize    int
	chunkOverlap int
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(extractor TextExtractor, embedder Embedder, registry IndexRegistry, chunkSize, chunkOverlap int, logger Logger) *UseCase {
	if chunkSize <= 0 {
		chunkSize = domain.DefaultChunkSize
	}
	if chunkOverlap < 0 {
		chunkOverlap = domain.DefaultChunkOverlap
	}
	return &UseCase{
		extractor:    extractor,
		embedder:     embedder,
		registry:     registry,
		chunkSize:    chunkSize,
		chunkOverlap: chunkOverlap,
		logger:       logger,
	}
}

// Execute строит индекс сессии по загруженным документам
// Документ без извлекаемого текста пропускается; если текста нет нигде,
// возвращается ErrNoExtractableText
func (uc *UseCase) Execute(ctx context.Context, sessionID string, files []File) (*Response, error) {
	if uc.embedder == nil {
		uc.logger.Warn("BuildIndex: embedding model is not configured")
		return nil, ErrLLMNotConfigured
	}

	var chunks []domain.Chunk
	indexed := 0

	for _, file := range files {
		pages, err := uc.extractor.ExtractPages(file.Data)
		if err != nil {
			uc.logger.Warn("BuildIndex: failed to parse %s for session %s: %v", file.Name, sessionID, err)
			return nil, fmt.Errorf("%w: %s", ErrInvalidDocument, file.Name)
		}

		if len(pages) == 0 {
			uc.logger.Warn("BuildIndex: no extractable text in %s, skipping", file.Name)
			continue
		}

		parts := ragindex.SplitText(strings.Join(pages, "\n"), uc.chunkSize, uc.chunkOverlap)
		for i, part := range parts {
			chunks = append(chunks, domain.Chunk{
				ID:         fmt.Sprintf("%s-%d", file.Name, i),
				DocumentID: file.Name,
				Content:    part,
				Index:      i,
			})
		}
		indexed++
	}

	if len(chunks) == 0 {
		uc.logger.Warn("BuildIndex: no extractable text in any of %d files for session %s", len(files), sessionID)
		return nil, ErrNoExtractableText
	}

	texts := make([]string, len(chunks))
	for i := range chunks {
		texts[i] = chunks[i].Content
	}

	embeddings, err := uc.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		if errors.Is(err, gemini.ErrNotConfigured) {
			return nil, ErrLLMNotConfigured
		}
		uc.logger.Error("BuildIndex: embedding failed for session %s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: embed chunks: %v", ErrInternal, err)
	}

	for i := range chunks {
		chunks[i].Embedding = embeddings[i]
	}

	uc.registry.Put(sessionID, ragindex.NewIndex(chunks))

	uc.logger.Info("BuildIndex: session %s indexed %d documents into %d chunks", sessionID, indexed, len(chunks))
	return &Response{Documents: indexed, Chunks: len(chunks)}, nil
}
