package send_message

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("session not found")

	// ErrLLMNotConfigured возвращается, когда языковая модель недоступна
	// из-за отсутствия API-ключа
	ErrLLMNotConfigured = errors.New("language model is not configured")

	// ErrUpstream возвращается, когда обращение к модели или поиску
	// по документам завершилось ошибкой внешнего сервиса
	ErrUpstream = errors.New("upstream language model failure")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("send message: internal error")
)
