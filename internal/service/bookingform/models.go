package bookingform

import "github.com/m04kA/SMC-AssistantService/internal/domain"

// UpdateRequest частичное обновление формы бронирования
// nil означает "поле не трогать", пустая строка - явная очистка поля
type UpdateRequest struct {
	Name        *string
	Email       *string
	Phone       *string
	BookingType *string
	Date        *string
	Time        *string
}

// FormResponse состояние формы после чтения или обновления
// Summary заполняется только для полной формы - вызывающий код
// сначала проверяет Complete
type FormResponse struct {
	State    domain.BookingState
	Complete bool
	Summary  string
}

func formResponse(state domain.BookingState) *FormResponse {
	resp := &FormResponse{
		State:    state,
		Complete: state.IsComplete(),
	}
	if resp.Complete {
		resp.Summary = state.Summarize()
	}
	return resp
}
