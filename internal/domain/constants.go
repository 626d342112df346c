package domain

// Default configuration values
const (
	DefaultChunkSize    = 1000
	DefaultChunkOverlap = 200
	DefaultTopK         = 4
	DefaultHistoryLimit = 25
)

// DateFormat формат даты бронирования (YYYY-MM-DD)
const DateFormat = "2006-01-02"

// BookingIntentKeywords ключевые слова для определения намерения бронирования
// Совпадение по подстроке в нижнем регистре переключает диалог в режим бронирования
var BookingIntentKeywords = []string{"book", "appointment", "reservation"}
