package mailer

import "errors"

var (
	// ErrNotConfigured возвращается, когда учетные данные SMTP не заданы
	ErrNotConfigured = errors.New("mailer client: SMTP credentials not configured")

	// ErrSend возвращается при ошибке отправки письма
	ErrSend = errors.New("mailer client: failed to send mail")
)
