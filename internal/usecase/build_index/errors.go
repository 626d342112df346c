package build_index

import "errors"

var (
	// ErrInvalidDocument возвращается, когда загруженный файл не является
	// корректным PDF-документом
	ErrInvalidDocument = errors.New("invalid document")

	// ErrNoExtractableText возвращается, когда ни один из загруженных
	// документов не содержит извлекаемого текста
	ErrNoExtractableText = errors.New("no extractable text in uploaded documents")

	// ErrLLMNotConfigured возвращается, когда модель эмбеддингов недоступна
	ErrLLMNotConfigured = errors.New("language model is not configured")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("build index: internal error")
)
