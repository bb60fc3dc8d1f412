package list_registrations

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/ADM-SchedulingService/internal/api/handlers"
	"github.com/m04kA/ADM-SchedulingService/internal/service/registrations"
)

const (
	msgInvalidEventID = "identificador de evento no válido"
	msgEventNotFound  = "evento no encontrado"
)

type Handler struct {
	service RegistrationService
	logger  Logger
}

func NewHandler(service RegistrationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/events/{eventId}/registrations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	eventID, err := strconv.ParseInt(vars["eventId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /events/{id}/registrations - Invalid event ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEventID)
		return
	}

	result, err := h.service.ListByEvent(r.Context(), eventID)
	if err != nil {
		switch {
		case errors.Is(err, registrations.ErrEventNotFound):
			h.logger.Warn("GET /events/{id}/registrations - Event not found: event_id=%d", eventID)
			handlers.RespondNotFound(w, msgEventNotFound)

		default:
			h.logger.Error("GET /events/{id}/registrations - Failed to list registrations: event_id=%d, error=%v",
				eventID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /events/{id}/registrations - Retrieved %d registrations: event_id=%d",
		len(result.Registrations), eventID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
