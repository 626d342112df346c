// Package llmmetrics декоратор языковой модели с записью метрик
// Оборачивает клиент модели и фиксирует количество и длительность
// обращений по каждой операции, не меняя поведение вызовов
package llmmetrics

import (
	"context"
	"time"
)

// LanguageModel интерфейс клиента языковой модели
type LanguageModel interface {
	Invoke(ctx context.Context, prompt string) (string, error)
	Embed(ctx context.Context, text string) ([]float32, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}

// Recorder интерфейс приемника метрик обращений к модели
type Recorder interface {
	RecordLLMRequest(operation, status string, durationSeconds float64)
}

const (
	opGenerate   = "generate"
	opEmbed      = "embed"
	opEmbedBatch = "embed_batch"

	statusSuccess = "success"
	statusError   = "error"
)

// Client клиент модели с записью метрик по каждому вызову
type Client struct {
	llm LanguageModel
	rec Recorder
}

// Wrap оборачивает клиент модели декоратором метрик
func Wrap(llm LanguageModel, rec Recorder) *Client {
	return &Client{
		llm: llm,
		rec: rec,
	}
}

// Invoke отправляет промпт модели и фиксирует метрику генерации
func (c *Client) Invoke(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	reply, err := c.llm.Invoke(ctx, prompt)
	c.record(opGenerate, start, err)
	return reply, err
}

// Embed возвращает вектор текста и фиксирует метрику эмбеддинга
func (c *Client) Embed(ctx context.Context, text string) ([]float32, error) {
	start := time.Now()
	vector, err := c.llm.Embed(ctx, text)
	c.record(opEmbed, start, err)
	return vector, err
}

// EmbedBatch возвращает векторы набора текстов и фиксирует метрику батча
func (c *Client) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	start := time.Now()
	vectors, err := c.llm.EmbedBatch(ctx, texts)
	c.record(opEmbedBatch, start, err)
	return vectors, err
}

func (c *Client) record(operation string, start time.Time, err error) {
	status := statusSuccess
	if err != nil {
		status = statusError
	}
	c.rec.RecordLLMRequest(operation, status, time.Since(start).Seconds())
}
