package sessions

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("session not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("sessions service: internal error")
)
