// Package gemini клиент языковой модели Google Gemini
// Один клиент обслуживает и генерацию текста, и эмбеддинги для поиска
package gemini

import (
	"context"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с Gemini API
type Client struct {
	client   *genai.Client
	model    *genai.GenerativeModel
	embModel *genai.EmbeddingModel
	log      Logger
}

// NewClient создает новый экземпляр клиента Gemini
// Отсутствие API-ключа - конфигурационная ошибка, обнаруживается сразу
func NewClient(ctx context.Context, apiKey, modelName, embeddingModelName string, log Logger) (*Client, error) {
	if apiKey == "" {
		return nil, ErrNotConfigured
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create client: %v", ErrInternal, err)
	}

	return &Client{
		client:   client,
		model:    client.GenerativeModel(modelName),
		embModel: client.EmbeddingModel(embeddingModelName),
		log:      log,
	}, nil
}

// Invoke отправляет промпт модели и возвращает текст ответа
// Если в ответе нет текстовых частей, возвращает строковое представление
// всего ответа - клиентские типы ответов неоднородны
func (c *Client) Invoke(ctx context.Context, prompt string) (string, error) {
	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		c.log.Error("Invoke: generate content failed: %v", err)
		return "", fmt.Errorf("%w: %v", ErrGenerate, err)
	}

	text := responseText(resp)
	if text == "" {
		c.log.Warn("Invoke: response has no textual parts, falling back to string rendering")
		return fmt.Sprintf("%v", resp), nil
	}

	return text, nil
}

// Embed возвращает векторное представление текста
func (c *Client) Embed(ctx context.Context, text string) ([]float32, error) {
	resp, err := c.embModel.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		c.log.Error("Embed: embed content failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrEmbed, err)
	}

	if resp.Embedding == nil {
		return nil, fmt.Errorf("%w: empty embedding in response", ErrEmbed)
	}

	return resp.Embedding.Values, nil
}

// EmbedBatch возвращает векторные представления для набора текстов
// Использует batch API, чтобы не делать по запросу на фрагмент
func (c *Client) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	batch := c.embModel.NewBatch()
	for _, text := range texts {
		batch.AddContent(genai.Text(text))
	}

	resp, err := c.embModel.BatchEmbedContents(ctx, batch)
	if err != nil {
		c.log.Error("EmbedBatch: batch embed failed for %d texts: %v", len(texts), err)
		return nil, fmt.Errorf("%w: %v", ErrEmbed, err)
	}

	if len(resp.Embeddings) != len(texts) {
		return nil, fmt.Errorf("%w: expected %d embeddings, got %d", ErrEmbed, len(texts), len(resp.Embeddings))
	}

	embeddings := make([][]float32, len(resp.Embeddings))
	for i, emb := range resp.Embeddings {
		embeddings[i] = emb.Values
	}

	return embeddings, nil
}

// Close освобождает ресурсы клиента
func (c *Client) Close() error {
	return c.client.Close()
}

// responseText собирает текстовые части первого кандидата ответа
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String()
}
