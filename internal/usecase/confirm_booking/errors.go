package confirm_booking

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("session not found")

	// ErrBookingIncomplete возвращается при попытке подтвердить форму
	// с незаполненными полями
	ErrBookingIncomplete = errors.New("booking form is incomplete")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("confirm booking: internal error")
)
