package list_bookings

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-AssistantService/internal/api/handlers"
	"github.com/m04kA/SMC-AssistantService/internal/domain"
	"github.com/m04kA/SMC-AssistantService/internal/service/bookings/models"
	"github.com/m04kA/SMC-AssistantService/pkg/ptr"
)

const msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/bookings
// Поддерживает query-параметры name, email (частичное совпадение)
// и date (точное совпадение, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &models.ListBookingsRequest{}
	if name := query.Get("name"); name != "" {
		req.Name = ptr.Ptr(name)
	}
	if email := query.Get("email"); email != "" {
		req.Email = ptr.Ptr(email)
	}
	if date := query.Get("date"); date != "" {
		if _, err := time.Parse(domain.DateFormat, date); err != nil {
			h.logger.Warn("GET /admin/bookings - Invalid date filter: %s", date)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = ptr.Ptr(date)
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /admin/bookings - Failed to list bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/bookings - Listed %d bookings", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
