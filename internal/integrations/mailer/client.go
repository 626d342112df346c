// Package mailer отправка писем подтверждения через SMTP
package mailer

import (
	"fmt"
	"net/smtp"
	"strings"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client SMTP-клиент для писем подтверждения
type Client struct {
	host     string
	port     int
	user     string
	password string
	log      Logger
}

// NewClient создает новый экземпляр SMTP-клиента
// Клиент создается и без учетных данных: отправка тогда возвращает
// ErrNotConfigured, не роняя процесс подтверждения бронирования
func NewClient(host string, port int, user, password string, log Logger) *Client {
	return &Client{
		host:     host,
		port:     port,
		user:     user,
		password: password,
		log:      log,
	}
}

// Configured сообщает, заданы ли учетные данные SMTP
func (c *Client) Configured() bool {
	return c.user != "" && c.password != ""
}

// Send отправляет письмо с plain-text телом
// Возвращает ошибку вместо паники при любых проблемах транспорта -
// вызывающий код решает, блокировать ли основную операцию
func (c *Client) Send(to, subject, body string) error {
	if !c.Configured() {
		return ErrNotConfigured
	}

	msg := buildMessage(c.user, to, subject, body)

	addr := fmt.Sprintf("%s:%d", c.host, c.port)
	auth := smtp.PlainAuth("", c.user, c.password, c.host)

	// smtp.SendMail сам переключается на STARTTLS, если сервер его объявляет
	if err := smtp.SendMail(addr, auth, c.user, []string{to}, msg); err != nil {
		c.log.Error("Send: failed to send mail to %s via %s: %v", to, addr, err)
		return fmt.Errorf("%w: %v", ErrSend, err)
	}

	c.log.Info("Send: confirmation mail sent to %s", to)
	return nil
}

func buildMessage(from, to, subject, body string) []byte {
	var sb strings.Builder
	sb.WriteString("From: " + from + "\r\n")
	sb.WriteString("To: " + to + "\r\n")
	sb.WriteString("Subject: " + subject + "\r\n")
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	sb.WriteString("\r\n")
	sb.WriteString(body)
	return []byte(sb.String())
}
