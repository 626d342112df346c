package documents

import "errors"

var (
	// ErrParse возвращается, когда файл не распознан как корректный PDF
	ErrParse = errors.New("documents: failed to parse PDF")
)
