package list_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/ADM-SchedulingService/internal/api/handlers"
	"github.com/m04kA/ADM-SchedulingService/internal/service/schedule"
	"github.com/m04kA/ADM-SchedulingService/internal/service/schedule/models"
)

const (
	msgInvalidEventID  = "identificador de evento no válido"
	msgInvalidWindowID = "identificador de ventana no válido"
	msgInvalidStatus   = "estado de horario no válido"
	msgEventNotFound   = "evento no encontrado"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/events/{eventId}/slots?windowId=&status=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	eventID, err := strconv.ParseInt(vars["eventId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /events/{id}/slots - Invalid event ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEventID)
		return
	}

	query := r.URL.Query()
	req := &models.ListSlotsRequest{EventID: eventID}

	if windowIDStr := query.Get("windowId"); windowIDStr != "" {
		windowID, err := strconv.ParseInt(windowIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /events/{id}/slots - Invalid window ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidWindowID)
			return
		}
		req.WindowID = &windowID
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.ListSlots(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrEventNotFound):
			h.logger.Warn("GET /events/{id}/slots - Event not found: event_id=%d", eventID)
			handlers.RespondNotFound(w, msgEventNotFound)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("GET /events/{id}/slots - Invalid status filter: event_id=%d, error=%v", eventID, err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /events/{id}/slots - Failed to list slots: event_id=%d, error=%v", eventID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /events/{id}/slots - Retrieved %d slots: event_id=%d", len(result.Slots), eventID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
