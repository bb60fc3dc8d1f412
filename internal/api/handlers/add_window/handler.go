package add_window

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/ADM-SchedulingService/internal/api/handlers"
	"github.com/m04kA/ADM-SchedulingService/internal/service/schedule"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud no válido"
	msgInvalidEventID     = "identificador de evento no válido"
	msgInvalidDateTime    = "formato de fecha u hora no válido"
	msgInvalidInput       = "datos de la ventana no válidos"
	msgEventNotFound      = "evento no encontrado"
	msgNotSingleCapacity  = "el evento no utiliza ventanas de horarios"
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

// Handle POST /api/v1/events/{eventId}/windows
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	eventID, err := strconv.ParseInt(vars["eventId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /events/{id}/windows - Invalid event ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEventID)
		return
	}

	var req AddWindowRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /events/{id}/windows - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(eventID)
	if err != nil {
		h.logger.Warn("POST /events/{id}/windows - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.service.AddWindow(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrEventNotFound):
			h.logger.Warn("POST /events/{id}/windows - Event not found: event_id=%d", eventID)
			handlers.RespondNotFound(w, msgEventNotFound)

		case errors.Is(err, schedule.ErrNotSingleCapacity):
			h.logger.Warn("POST /events/{id}/windows - Event does not use windows: event_id=%d", eventID)
			handlers.RespondConflict(w, msgNotSingleCapacity)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("POST /events/{id}/windows - Invalid input: event_id=%d, error=%v", eventID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /events/{id}/windows - Failed to add window: event_id=%d, error=%v", eventID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /events/{id}/windows - Window created successfully: window_id=%d, event_id=%d",
		result.ID, eventID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
