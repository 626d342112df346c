package update_booking_form

import "github.com/m04kA/SMC-AssistantService/internal/service/bookingform"

// UpdateFormRequest HTTP request model
// Отсутствующее поле не меняется, пустая строка очищает поле
type UpdateFormRequest struct {
	Name        *string `json:"name,omitempty"`
	Email       *string `json:"email,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	BookingType *string `json:"bookingType,omitempty"`
	Date        *string `json:"date,omitempty"`
	Time        *string `json:"time,omitempty"`
}

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

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateFormRequest) ToServiceRequest() *bookingform.UpdateRequest {
	return &bookingform.UpdateRequest{
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		BookingType: r.BookingType,
		Date:        r.Date,
		Time:        r.Time,
	}
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
