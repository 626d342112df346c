package bookings

import (
	"context"

	"github.com/m04kA/SMC-AssistantService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.BookingRecord, error)
	ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.BookingRecord, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
