package clear_chat_history

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AssistantService/internal/api/handlers"
	"github.com/m04kA/SMC-AssistantService/internal/service/sessions"
)

const msgSessionNotFound = "сессия не найдена"

type Handler struct {
	service SessionService
	logger  Logger
}

func NewHandler(service SessionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/sessions/{sessionId}/messages
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	if err := h.service.ClearHistory(r.Context(), sessionID); err != nil {
		if errors.Is(err, sessions.ErrSessionNotFound) {
			h.logger.Warn("DELETE /sessions/{id}/messages - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
			return
		}
		h.logger.Error("DELETE /sessions/{id}/messages - Failed to clear history: session_id=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /sessions/{id}/messages - History cleared: session_id=%s", sessionID)
	w.WriteHeader(http.StatusNoContent)
}
