package send_message

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AssistantService/internal/api/handlers"
	sendMessage "github.com/m04kA/SMC-AssistantService/internal/usecase/send_message"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgEmptyMessage       = "сообщение не может быть пустым"
	msgSessionNotFound    = "сессия не найдена"
	msgLLMNotConfigured   = "языковая модель не настроена"
	msgUpstreamFailure    = "языковая модель временно недоступна"
)

type Handler struct {
	useCase SendMessageUseCase
	logger  Logger
}

func NewHandler(useCase SendMessageUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions/{sessionId}/messages
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req SendMessageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/messages - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		h.logger.Warn("POST /sessions/{id}/messages - Empty message: session_id=%s", sessionID)
		handlers.RespondBadRequest(w, msgEmptyMessage)
		return
	}

	result, err := h.useCase.Execute(r.Context(), sessionID, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, sendMessage.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/messages - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, sendMessage.ErrLLMNotConfigured):
			h.logger.Warn("POST /sessions/{id}/messages - LLM not configured: session_id=%s", sessionID)
			handlers.RespondServiceUnavailable(w, msgLLMNotConfigured)

		case errors.Is(err, sendMessage.ErrUpstream):
			h.logger.Error("POST /sessions/{id}/messages - Upstream LLM failure: session_id=%s, error=%v", sessionID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgUpstreamFailure)

		default:
			h.logger.Error("POST /sessions/{id}/messages - Failed to handle message: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/messages - Message handled: session_id=%s, route=%s", sessionID, result.Route)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
