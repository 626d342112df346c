package create_session

import "time"

// SessionResponse HTTP response model
type SessionResponse struct {
	SessionID string `json:"sessionId"`
	CreatedAt string `json:"createdAt"`
}

func newSessionResponse(id string, createdAt time.Time) *SessionResponse {
	return &SessionResponse{
		SessionID: id,
		CreatedAt: createdAt.Format(time.RFC3339),
	}
}
