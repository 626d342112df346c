package answer_question

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AssistantService/internal/domain"
	"github.com/m04kA/SMC-AssistantService/internal/service/ragindex"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeLLM struct {
	embedding []float32
	embedErr  error
	answer    string
	invokeErr error

	invoked bool
	prompt  string
}

func (f *fakeLLM) Invoke(ctx context.Context, prompt string) (string, error) {
	f.invoked = true
	f.prompt = prompt
	return f.answer, f.invokeErr
}

func (f *fakeLLM) Embed(ctx context.Context, text string) ([]float32, error) {
	return f.embedding, f.embedErr
}

func registryWithIndex(sessionID string, chunks []domain.Chunk) *ragindex.Registry {
	registry := ragindex.NewRegistry()
	registry.Put(sessionID, ragindex.NewIndex(chunks))
	return registry
}

func TestExecute_NoIndex_ReturnsFixedMessageWithoutModelCall(t *testing.T) {
	llm := &fakeLLM{answer: "should not be used"}
	uc := NewUseCase(llm, ragindex.NewRegistry(), 4, nopLogger{})

	answer, err := uc.Execute(context.Background(), "s1", "what are the opening hours?")

	require.NoError(t, err)
	assert.Equal(t, NoDocumentsMessage, answer)
	assert.False(t, llm.invoked)
}

func TestExecute_BuildsPromptFromTopPassages(t *testing.T) {
	chunks := []domain.Chunk{
		{Content: "first passage", Embedding: []float32{1, 0}},
		{Content: "second passage", Embedding: []float32{0.9, 0.1}},
		{Content: "irrelevant", Embedding: []float32{0, 1}},
	}
	llm := &fakeLLM{embedding: []float32{1, 0}, answer: "the answer"}
	uc := NewUseCase(llm, registryWithIndex("s1", chunks), 2, nopLogger{})

	answer, err := uc.Execute(context.Background(), "s1", "question?")

	require.NoError(t, err)
	assert.Equal(t, "the answer", answer)
	assert.Contains(t, llm.prompt, "first passage\n\nsecond passage")
	assert.NotContains(t, llm.prompt, "irrelevant")
	assert.Contains(t, llm.prompt, "Question: question?")
}

func TestExecute_EmptyIndex_StillInvokesModel(t *testing.T) {
	llm := &fakeLLM{embedding: []float32{1, 0}, answer: "not sure"}
	uc := NewUseCase(llm, registryWithIndex("s1", nil), 4, nopLogger{})

	answer, err := uc.Execute(context.Background(), "s1", "question?")

	require.NoError(t, err)
	assert.Equal(t, "not sure", answer)
	assert.True(t, llm.invoked)
	assert.Contains(t, llm.prompt, "Context:\n\n\nQuestion:")
}

func TestExecute_EmbedErrorPropagates(t *testing.T) {
	embedErr := errors.New("embed failed")
	llm := &fakeLLM{embedErr: embedErr}
	uc := NewUseCase(llm, registryWithIndex("s1", nil), 4, nopLogger{})

	_, err := uc.Execute(context.Background(), "s1", "question?")

	require.Error(t, err)
	assert.ErrorIs(t, err, embedErr)
	assert.False(t, llm.invoked)
}

func TestExecute_InvokeErrorPropagates(t *testing.T) {
	invokeErr := errors.New("generation failed")
	llm := &fakeLLM{embedding: []float32{1, 0}, invokeErr: invokeErr}
	uc := NewUseCase(llm, registryWithIndex("s1", nil), 4, nopLogger{})

	_, err := uc.Execute(context.Background(), "s1", "question?")

	require.Error(t, err)
	assert.ErrorIs(t, err, invokeErr)
}

func TestExecute_PromptTemplateShape(t *testing.T) {
	llm := &fakeLLM{embedding: []float32{1, 0}, answer: "ok"}
	chunks := []domain.Chunk{{Content: "ctx passage", Embedding: []float32{1, 0}}}
	uc := NewUseCase(llm, registryWithIndex("s1", chunks), 4, nopLogger{})

	_, err := uc.Execute(context.Background(), "s1", "q")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(llm.prompt, "You are a helpful assistant answering questions based on the provided context."))
	assert.True(t, strings.HasSuffix(llm.prompt, "Answer clearly and concisely. If the answer is not in the context, say you are not sure."))
}
