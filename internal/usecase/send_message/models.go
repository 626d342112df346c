package send_message

import "github.com/m04kA/SMC-AssistantService/internal/domain"

// Маршруты обработки сообщения, попадают в метрики
const (
	RouteBookingIntent = "booking_intent"
	RouteDocuments     = "documents"
	RouteChat          = "chat"
)

// Response ответ ассистента на сообщение пользователя
type Response struct {
	Reply       string
	Route       string
	BookingMode bool
	History     []domain.ChatMessage
}
