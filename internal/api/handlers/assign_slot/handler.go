package assign_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/ADM-SchedulingService/internal/api/handlers"
	"github.com/m04kA/ADM-SchedulingService/internal/api/middleware"
	assignSlot "github.com/m04kA/ADM-SchedulingService/internal/usecase/assign_slot"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud no válido"
	msgInvalidEventID     = "identificador de evento no válido"
	msgInvalidSlotID      = "identificador de horario no válido"
	msgInvalidInput       = "datos de la asignación no válidos"
	msgMissingUserID      = "falta el identificador del usuario"
	msgEventNotFound      = "evento no encontrado"
	msgSlotNotFound       = "horario no encontrado"
	msgSlotNotFree        = "el horario ya no está disponible"
	msgAlreadyBooked      = "el aspirante ya tiene una cita activa para este evento"
	msgNotEligible        = "el aspirante no está habilitado para agendar una cita"
	msgNotSingleCapacity  = "el evento no utiliza asignación de horarios"
)

type Handler struct {
	useCase AssignSlotUseCase
	logger  Logger
}

func NewHandler(useCase AssignSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/events/{eventId}/slots/{slotId}/assign
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	eventID, err := strconv.ParseInt(vars["eventId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /events/{id}/slots/{id}/assign - Invalid event ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEventID)
		return
	}

	slotID, err := strconv.ParseInt(vars["slotId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /events/{id}/slots/{id}/assign - Invalid slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /events/{id}/slots/{id}/assign - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req AssignSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /events/{id}/slots/{id}/assign - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &assignSlot.Request{
		EventID:     eventID,
		SlotID:      slotID,
		ApplicantID: req.ApplicantID,
		AssignedBy:  userID,
		Notes:       req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, assignSlot.ErrEventNotFound):
			h.logger.Warn("POST /events/{id}/slots/{id}/assign - Event not found: event_id=%d", eventID)
			handlers.RespondNotFound(w, msgEventNotFound)

		case errors.Is(err, assignSlot.ErrSlotNotFound):
			h.logger.Warn("POST /events/{id}/slots/{id}/assign - Slot not found: slot_id=%d", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, assignSlot.ErrSlotNotFree):
			h.logger.Warn("POST /events/{id}/slots/{id}/assign - Slot not free: slot_id=%d", slotID)
			handlers.RespondConflict(w, msgSlotNotFree)

		case errors.Is(err, assignSlot.ErrAlreadyBooked):
			h.logger.Warn("POST /events/{id}/slots/{id}/assign - Applicant already booked: applicant_id=%d, event_id=%d",
				req.ApplicantID, eventID)
			handlers.RespondConflict(w, msgAlreadyBooked)

		case errors.Is(err, assignSlot.ErrNotEligible):
			h.logger.Warn("POST /events/{id}/slots/{id}/assign - Applicant not eligible: applicant_id=%d",
				req.ApplicantID)
			handlers.RespondUnprocessable(w, msgNotEligible)

		case errors.Is(err, assignSlot.ErrNotSingleCapacity):
			h.logger.Warn("POST /events/{id}/slots/{id}/assign - Event does not use slots: event_id=%d", eventID)
			handlers.RespondConflict(w, msgNotSingleCapacity)

		case errors.Is(err, assignSlot.ErrInvalidInput):
			h.logger.Warn("POST /events/{id}/slots/{id}/assign - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /events/{id}/slots/{id}/assign - Failed to assign slot: slot_id=%d, error=%v",
				slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /events/{id}/slots/{id}/assign - Appointment created: appointment_id=%d, slot_id=%d, applicant_id=%d",
		result.AppointmentID, slotID, req.ApplicantID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
