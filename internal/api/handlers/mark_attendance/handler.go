package mark_attendance

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/ADM-SchedulingService/internal/api/handlers"
	"github.com/m04kA/ADM-SchedulingService/internal/service/registrations"
	"github.com/m04kA/ADM-SchedulingService/internal/service/registrations/models"
)

const (
	msgInvalidRequestBody   = "cuerpo de la solicitud no válido"
	msgInvalidEventID       = "identificador de evento no válido"
	msgInvalidInput         = "datos de asistencia no válidos"
	msgEventNotFound        = "evento no encontrado"
	msgRegistrationNotFound = "registro no encontrado"
	msgTrackingDisabled     = "el evento no registra asistencia"
)

// MarkAttendanceRequest HTTP request model
type MarkAttendanceRequest struct {
	UserID int64  `json:"userId"`
	Action string `json:"action"` // attended | no_show | reset
}

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

// Handle PATCH /api/v1/events/{eventId}/attendance
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	eventID, err := strconv.ParseInt(vars["eventId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /events/{id}/attendance - Invalid event ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEventID)
		return
	}

	var req MarkAttendanceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /events/{id}/attendance - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.MarkAttendance(r.Context(), &models.MarkAttendanceRequest{
		EventID: eventID,
		UserID:  req.UserID,
		Action:  req.Action,
	})
	if err != nil {
		switch {
		case errors.Is(err, registrations.ErrEventNotFound):
			h.logger.Warn("PATCH /events/{id}/attendance - Event not found: event_id=%d", eventID)
			handlers.RespondNotFound(w, msgEventNotFound)

		case errors.Is(err, registrations.ErrRegistrationNotFound):
			h.logger.Warn("PATCH /events/{id}/attendance - Registration not found: event_id=%d, user_id=%d",
				eventID, req.UserID)
			handlers.RespondNotFound(w, msgRegistrationNotFound)

		case errors.Is(err, registrations.ErrTrackingDisabled):
			h.logger.Warn("PATCH /events/{id}/attendance - Tracking disabled: event_id=%d", eventID)
			handlers.RespondConflict(w, msgTrackingDisabled)

		case errors.Is(err, registrations.ErrInvalidInput):
			h.logger.Warn("PATCH /events/{id}/attendance - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /events/{id}/attendance - Failed to mark attendance: event_id=%d, user_id=%d, error=%v",
				eventID, req.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /events/{id}/attendance - Attendance marked: registration_id=%d, status=%s",
		result.ID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
