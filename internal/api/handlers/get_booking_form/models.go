package get_booking_form

import "github.com/m04kA/SMC-AssistantService/internal/service/bookingform"

// BookingStateResponse состояние полей формы
type BookingStateResponse struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	BookingType string `json:"bookingType"`
	Date        string `json:"date"`
	Time        string `json:"time"`
}

// FormResponse HTTP response model
type FormResponse struct {
	Booking  BookingStateResponse `json:"booking"`
	Complete bool                 `json:"complete"`
	Summary  string               `json:"summary,omitempty"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *bookingform.FormResponse) *FormResponse {
	return &FormResponse{
		Booking: BookingStateResponse{
			Name:        resp.State.Name,
			Email:       resp.State.Email,
			Phone:       resp.State.Phone,
			BookingType: resp.State.BookingType,
			Date:        resp.State.Date,
			Time:        resp.State.Time,
		},
		Complete: resp.Complete,
		Summary:  resp.Summary,
	}
}
