package confirm_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AssistantService/internal/api/handlers"
	confirmBooking "github.com/m04kA/SMC-AssistantService/internal/usecase/confirm_booking"
)

const (
	msgSessionNotFound   = "сессия не найдена"
	msgBookingIncomplete = "форма бронирования заполнена не полностью"
)

type Handler struct {
	useCase ConfirmBookingUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions/{sessionId}/booking/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	result, err := h.useCase.Execute(r.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, confirmBooking.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/booking/confirm - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, confirmBooking.ErrBookingIncomplete):
			h.logger.Warn("POST /sessions/{id}/booking/confirm - Form incomplete: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgBookingIncomplete)

		default:
			h.logger.Error("POST /sessions/{id}/booking/confirm - Failed to confirm booking: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/booking/confirm - Booking confirmed: session_id=%s, booking_id=%d, email_sent=%t",
		sessionID, result.BookingID, result.EmailSent)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
