// Package documents извлечение текста из загруженных PDF-документов
package documents

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Parser постраничный извлекатель текста из PDF
type Parser struct{}

// NewParser создает новый экземпляр парсера
func NewParser() *Parser {
	return &Parser{}
}

// ExtractPages извлекает текст PDF постранично
func (*Parser) ExtractPages(data []byte) ([]string, error) {
	return ExtractPages(data)
}

// ExtractPages извлекает текст PDF постранично
// Страницы без извлекаемого текста пропускаются; страница с ошибкой
// извлечения тоже считается пустой и не прерывает обработку документа
func ExtractPages(data []byte) ([]string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}

		if strings.TrimSpace(text) != "" {
			pages = append(pages, text)
		}
	}

	return pages, nil
}
