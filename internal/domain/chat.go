package domain

import "time"

// Роли сообщений в диалоге
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage одно сообщение диалога
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Session сессионный контекст диалога
// Вся изменяемая по ходу диалога информация живет здесь, а не в глобальном
// состоянии: история сообщений, форма бронирования, флаг режима бронирования
type Session struct {
	ID          string        `json:"id"`
	Messages    []ChatMessage `json:"messages"`
	Booking     BookingState  `json:"booking"`
	BookingMode bool          `json:"booking_mode"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// AppendMessage добавляет сообщение в историю и обрезает ее до limit последних
func (s *Session) AppendMessage(role, content string, limit int) {
	s.Messages = append(s.Messages, ChatMessage{Role: role, Content: content})
	if limit > 0 && len(s.Messages) > limit {
		s.Messages = s.Messages[len(s.Messages)-limit:]
	}
}

// ResetBooking сбрасывает форму бронирования и выходит из режима бронирования
// Вызывается после успешного сохранения бронирования
func (s *Session) ResetBooking() {
	s.Booking = BookingState{}
	s.BookingMode = false
}
