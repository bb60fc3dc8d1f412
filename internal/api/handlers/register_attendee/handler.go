package register_attendee

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/ADM-SchedulingService/internal/api/handlers"
	"github.com/m04kA/ADM-SchedulingService/internal/api/middleware"
	registerAttendee "github.com/m04kA/ADM-SchedulingService/internal/usecase/register_attendee"
)

const (
	msgInvalidEventID       = "identificador de evento no válido"
	msgInvalidRequestBody   = "cuerpo de la solicitud no válido"
	msgMissingUserID        = "falta el identificador del usuario"
	msgEventNotFound        = "evento no encontrado"
	msgNotRegistrationEvent = "el evento no acepta registros"
	msgEventNotOpen         = "el evento no está abierto para registro"
	msgAlreadyRegistered    = "ya está registrado en este evento"
	msgCapacityExceeded     = "el evento ha alcanzado su capacidad máxima"
	msgInvalidInput         = "datos del registro no válidos"
)

type Handler struct {
	useCase RegisterAttendeeUseCase
	logger  Logger
}

func NewHandler(useCase RegisterAttendeeUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/events/{eventId}/register
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	eventID, err := strconv.ParseInt(vars["eventId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /events/{id}/register - Invalid event ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEventID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /events/{id}/register - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Тело запроса опционально: регистрация без заметок допустима
	var req RegisterAttendeeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("POST /events/{id}/register - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &registerAttendee.Request{
		EventID: eventID,
		UserID:  userID,
		Notes:   req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, registerAttendee.ErrEventNotFound):
			h.logger.Warn("POST /events/{id}/register - Event not found: event_id=%d", eventID)
			handlers.RespondNotFound(w, msgEventNotFound)

		case errors.Is(err, registerAttendee.ErrNotRegistrationEvent):
			h.logger.Warn("POST /events/{id}/register - Event does not accept registrations: event_id=%d", eventID)
			handlers.RespondConflict(w, msgNotRegistrationEvent)

		case errors.Is(err, registerAttendee.ErrEventNotOpen):
			h.logger.Warn("POST /events/{id}/register - Event not open: event_id=%d", eventID)
			handlers.RespondConflict(w, msgEventNotOpen)

		case errors.Is(err, registerAttendee.ErrAlreadyRegistered):
			h.logger.Warn("POST /events/{id}/register - Already registered: event_id=%d, user_id=%d",
				eventID, userID)
			handlers.RespondConflict(w, msgAlreadyRegistered)

		case errors.Is(err, registerAttendee.ErrCapacityExceeded):
			h.logger.Warn("POST /events/{id}/register - Capacity exceeded: event_id=%d", eventID)
			handlers.RespondConflict(w, msgCapacityExceeded)

		case errors.Is(err, registerAttendee.ErrInvalidInput):
			h.logger.Warn("POST /events/{id}/register - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /events/{id}/register - Failed to register: event_id=%d, user_id=%d, error=%v",
				eventID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /events/{id}/register - Registration created: registration_id=%d, event_id=%d, user_id=%d",
		result.RegistrationID, eventID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
