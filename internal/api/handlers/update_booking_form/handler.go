package update_booking_form

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AssistantService/internal/api/handlers"
	"github.com/m04kA/SMC-AssistantService/internal/service/bookingform"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgSessionNotFound    = "сессия не найдена"
)

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

// Handle PATCH /api/v1/sessions/{sessionId}/booking
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req UpdateFormRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /sessions/{id}/booking - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	form, err := h.service.Update(r.Context(), sessionID, req.ToServiceRequest())
	if err != nil {
		if errors.Is(err, bookingform.ErrSessionNotFound) {
			h.logger.Warn("PATCH /sessions/{id}/booking - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
			return
		}
		h.logger.Error("PATCH /sessions/{id}/booking - Failed to update form: session_id=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PATCH /sessions/{id}/booking - Form updated: session_id=%s, complete=%t", sessionID, form.Complete)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(form))
}
