package domain

import "fmt"

// BookingState состояние заполнения формы бронирования в рамках сессии
// Поля заполняются пользователем по одному (slot filling), машина состояний
// сама ничего не мутирует - только проверяет полноту и рендерит сводку
type BookingState struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	BookingType string `json:"booking_type"`
	Date        string `json:"date"` // YYYY-MM-DD
	Time        string `json:"time"` // HH:MM
	Confirmed   bool   `json:"confirmed"`
}

// IsComplete возвращает true, если все шесть обязательных полей непустые
// Формат даты и времени намеренно не проверяется: любое непустое значение
// считается заполненным полем
func (s BookingState) IsComplete() bool {
	return s.Name != "" &&
		s.Email != "" &&
		s.Phone != "" &&
		s.BookingType != "" &&
		s.Date != "" &&
		s.Time != ""
}

// Summarize возвращает человекочитаемую сводку бронирования
// Рендеринг детерминирован и не зависит от полноты формы -
// вызывающий код сам проверяет IsComplete
func (s BookingState) Summarize() string {
	return fmt.Sprintf(
		"Please confirm your booking details:\n\n"+
			"- Name: %s\n"+
			"- Email: %s\n"+
			"- Phone: %s\n"+
			"- Booking type: %s\n"+
			"- Date: %s\n"+
			"- Time: %s\n\n"+
			"Click the confirm button to save, or edit the fields above to change any detail.",
		s.Name, s.Email, s.Phone, s.BookingType, s.Date, s.Time,
	)
}
