package send_message

import (
	sendMessage "github.com/m04kA/SMC-AssistantService/internal/usecase/send_message"
)

// SendMessageRequest HTTP request model
type SendMessageRequest struct {
	Message string `json:"message"`
}

// MessageResponse HTTP response model
type MessageResponse struct {
	Reply       string `json:"reply"`
	BookingMode bool   `json:"bookingMode"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *sendMessage.Response) *MessageResponse {
	return &MessageResponse{
		Reply:       resp.Reply,
		BookingMode: resp.BookingMode,
	}
}
