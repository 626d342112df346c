package update_booking_form

import (
	"context"

	"github.com/m04kA/SMC-AssistantService/internal/service/bookingform"
)

type BookingFormService interface {
	Update(ctx context.Context, sessionID string, req *bookingform.UpdateRequest) (*bookingform.FormResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
