package get_booking_form

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AssistantService/internal/api/handlers"
	"github.com/m04kA/SMC-AssistantService/internal/service/bookingform"
)

const msgSessionNotFound = "сессия не найдена"

type Handler struct {
	service BookingFormService
	logger  Logger
}

func NewHandler(service BookingFormService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/sessions/{sessionId}/booking
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	form, err := h.service.Get(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, bookingform.ErrSessionNotFound) {
			h.logger.Warn("GET /sessions/{id}/booking - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
			return
		}
		h.logger.Error("GET /sessions/{id}/booking - Failed to get form: session_id=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(form))
}
