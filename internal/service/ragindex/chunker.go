package ragindex

import "strings"

// SplitText режет текст на перекрывающиеся фрагменты заданного размера
// Граница фрагмента по возможности сдвигается к ближайшему пробелу,
// чтобы не резать слова посередине
func SplitText(content string, chunkSize, chunkOverlap int) []string {
	if chunkSize <= 0 {
		chunkSize = 500
	}
	if chunkOverlap < 0 || chunkOverlap >= chunkSize {
		chunkOverlap = 0
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil
	}

	var chunks []string
	start := 0

	for start < len(content) {
		end := start + chunkSize
		if end > len(content) {
			end = len(content)
		}

		// Переносим границу на последний пробел внутри фрагмента
		if end < len(content) {
			if lastSpace := strings.LastIndex(content[start:end], " "); lastSpace > 0 {
				end = start + lastSpace
			}
		}

		chunk := strings.TrimSpace(content[start:end])
		if chunk != "" {
			chunks = append(chunks, chunk)
		}

		if end >= len(content) {
			break
		}

		next := end - chunkOverlap
		if next <= start {
			// Гарантируем продвижение вперед даже при больших перекрытиях
			next = end
		}
		start = next
	}

	return chunks
}
