package create_session

import (
	"net/http"

	"github.com/m04kA/SMC-AssistantService/internal/api/handlers"
)

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

// Handle POST /api/v1/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.Create(r.Context())
	if err != nil {
		h.logger.Error("POST /sessions - Failed to create session: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /sessions - Session created: session_id=%s", session.ID)
	handlers.RespondJSON(w, http.StatusCreated, newSessionResponse(session.ID, session.CreatedAt))
}
