package get_chat_history

import "github.com/m04kA/SMC-AssistantService/internal/domain"

// MessageResponse одно сообщение истории
type MessageResponse struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// HistoryResponse HTTP response model
type HistoryResponse struct {
	Messages []MessageResponse `json:"messages"`
}

// FromDomainMessages конвертирует историю сессии в HTTP response
func FromDomainMessages(messages []domain.ChatMessage) *HistoryResponse {
	resp := &HistoryResponse{Messages: make([]MessageResponse, 0, len(messages))}
	for _, message := range messages {
		resp.Messages = append(resp.Messages, MessageResponse{
			Role:    message.Role,
			Content: message.Content,
		})
	}
	return resp
}
