package confirm_booking

import (
	confirmBooking "github.com/m04kA/SMC-AssistantService/internal/usecase/confirm_booking"
)

// ConfirmResponse HTTP response model
type ConfirmResponse struct {
	BookingID  int64  `json:"bookingId"`
	Status     string `json:"status"`
	EmailSent  bool   `json:"emailSent"`
	EmailError string `json:"emailError,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *confirmBooking.Response) *ConfirmResponse {
	return &ConfirmResponse{
		BookingID:  resp.BookingID,
		Status:     resp.Status,
		EmailSent:  resp.EmailSent,
		EmailError: resp.EmailError,
	}
}
