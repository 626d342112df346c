package ragindex

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AssistantService/internal/domain"
)

func TestIndex_Search_OrdersByScore(t *testing.T) {
	index := NewIndex([]domain.Chunk{
		{ID: "far", Content: "far", Embedding: []float32{0, 1}},
		{ID: "near", Content: "near", Embedding: []float32{1, 0}},
		{ID: "mid", Content: "mid", Embedding: []float32{1, 1}},
	})

	results, err := index.Search(context.Background(), []float32{1, 0}, 3)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, "near", results[0].Chunk.ID)
	assert.Equal(t, "mid", results[1].Chunk.ID)
	assert.Equal(t, "far", results[2].Chunk.ID)
}

func TestIndex_Search_LimitsToTopK(t *testing.T) {
	chunks := make([]domain.Chunk, 10)
	for i := range chunks {
		chunks[i] = domain.Chunk{Embedding: []float32{1, float32(i)}}
	}
	index := NewIndex(chunks)

	results, err := index.Search(context.Background(), []float32{1, 0}, 4)
	require.NoError(t, err)
	assert.Len(t, results, 4)
}

func TestIndex_Search_EmptyIndex(t *testing.T) {
	index := NewIndex(nil)

	results, err := index.Search(context.Background(), []float32{1, 0}, 4)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestCosineSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, cosineSimilarity([]float32{1, 2}, []float32{2, 4}), 1e-9)
	assert.InDelta(t, 0.0, cosineSimilarity([]float32{1, 0}, []float32{0, 1}), 1e-9)
	assert.InDelta(t, -1.0, cosineSimilarity([]float32{1, 0}, []float32{-1, 0}), 1e-9)

	// Вырожденные случаи
	assert.Equal(t, 0.0, cosineSimilarity(nil, nil))
	assert.Equal(t, 0.0, cosineSimilarity([]float32{1}, []float32{1, 2}))
	assert.Equal(t, 0.0, cosineSimilarity([]float32{0, 0}, []float32{1, 1}))
}

func TestSplitText_ChunksWithOverlap(t *testing.T) {
	content := strings.Repeat("word ", 200)

	chunks := SplitText(content, 100, 20)

	require.NotEmpty(t, chunks)
	for _, chunk := range chunks {
		assert.LessOrEqual(t, len(chunk), 100)
		assert.NotEqual(t, "", strings.TrimSpace(chunk))
	}
}

func TestSplitText_ShortContentSingleChunk(t *testing.T) {
	chunks := SplitText("short text", 100, 20)

	require.Len(t, chunks, 1)
	assert.Equal(t, "short text", chunks[0])
}

func TestSplitText_EmptyContent(t *testing.T) {
	assert.Nil(t, SplitText("", 100, 20))
	assert.Nil(t, SplitText("   \n\t  ", 100, 20))
}

func TestSplitText_BreaksAtWordBoundary(t *testing.T) {
	content := "alpha beta gamma delta epsilon"

	chunks := SplitText(content, 12, 0)

	for _, chunk := range chunks {
		assert.False(t, strings.HasSuffix(chunk, " "))
		// Каждый фрагмент состоит из целых слов исходного текста
		for _, w := range strings.Fields(chunk) {
			assert.Contains(t, []string{"alpha", "beta", "gamma", "delta", "epsilon"}, w)
		}
	}
}

func TestRegistry(t *testing.T) {
	registry := NewRegistry()

	assert.Nil(t, registry.Get("s1"))

	index := NewIndex([]domain.Chunk{{ID: "c1"}})
	registry.Put("s1", index)
	assert.Same(t, index, registry.Get("s1"))
	assert.Nil(t, registry.Get("s2"))

	registry.Delete("s1")
	assert.Nil(t, registry.Get("s1"))
}
