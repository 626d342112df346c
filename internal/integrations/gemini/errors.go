package gemini

import "errors"

var (
	// ErrNotConfigured возвращается, когда API-ключ не задан
	ErrNotConfigured = errors.New("gemini client: GEMINI_API_KEY is not set")

	// ErrGenerate возвращается при ошибке генерации текста
	ErrGenerate = errors.New("gemini client: generate content failed")

	// ErrEmbed возвращается при ошибке построения эмбеддингов
	ErrEmbed = errors.New("gemini client: embed content failed")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("gemini client: internal error")
)
