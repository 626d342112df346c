// Package ragindex сессионный поисковый индекс по загруженным документам
// Индекс живет в памяти процесса: один индекс на сессию, конкурентного
// доступа к одному индексу нет, перестроение заменяет индекс целиком
package ragindex

import (
	"context"
	"math"
	"sort"

	"github.com/m04kA/SMC-AssistantService/internal/domain"
)

// Index векторный индекс фрагментов документов одной сессии
type Index struct {
	chunks []domain.Chunk
}

// NewIndex создает индекс по готовым фрагментам с эмбеддингами
func NewIndex(chunks []domain.Chunk) *Index {
	return &Index{chunks: chunks}
}

// Search возвращает topK наиболее близких фрагментов по косинусной близости
// Пустой индекс дает пустой результат - это не ошибка
func (i *Index) Search(ctx context.Context, embedding []float32, topK int) ([]domain.SearchResult, error) {
	if topK <= 0 {
		topK = domain.DefaultTopK
	}

	results := make([]domain.SearchResult, 0, len(i.chunks))
	for _, chunk := range i.chunks {
		results = append(results, domain.SearchResult{
			Chunk: chunk,
			Score: cosineSimilarity(embedding, chunk.Embedding),
		})
	}

	sort.Slice(results, func(a, b int) bool {
		return results[a].Score > results[b].Score
	})

	if len(results) > topK {
		results = results[:topK]
	}

	return results, nil
}

// Size возвращает количество фрагментов в индексе
func (i *Index) Size() int {
	return len(i.chunks)
}

// cosineSimilarity косинусная близость двух векторов
// Возвращает 0 для векторов разной размерности или нулевой длины
func cosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
