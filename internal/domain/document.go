package domain

// Chunk фрагмент документа для векторного поиска
type Chunk struct {
	ID         string
	DocumentID string
	Content    string
	Index      int       // Позиция фрагмента в документе
	Embedding  []float32 // Векторное представление
}

// SearchResult результат векторного поиска с оценкой релевантности
type SearchResult struct {
	Chunk Chunk
	Score float64
}
