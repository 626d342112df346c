package confirm_booking

import (
	"context"

	"github.com/m04kA/SMC-AssistantService/internal/domain"
)

// SessionStore интерфейс хранилища сессий
type SessionStore interface {
	Get(ctx context.Context, id string) (*domain.Session, error)
	Save(ctx context.Context, session *domain.Session) error
}

// CustomerRepository интерфейс репозитория клиентов
type CustomerRepository interface {
	FindOrCreate(ctx context.Context, name, email, phone string) (*domain.Customer, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// TransactionManager интерфейс управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Mailer интерфейс отправки писем подтверждения
type Mailer interface {
	Configured() bool
	Send(to, subject, body string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
