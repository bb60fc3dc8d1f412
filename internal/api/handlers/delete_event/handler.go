package delete_event

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/ADM-SchedulingService/internal/api/handlers"
	"github.com/m04kA/ADM-SchedulingService/internal/domain"
	deleteEvent "github.com/m04kA/ADM-SchedulingService/internal/usecase/delete_event"
)

const (
	msgInvalidEventID = "identificador de evento no válido"
	msgNotFound       = "evento no encontrado"
	msgRequiresForce  = "el evento tiene citas o registros activos; repita la solicitud con force=true"
)

type Handler struct {
	useCase DeleteEventUseCase
	logger  Logger
}

func NewHandler(useCase DeleteEventUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/events/{eventId}?force=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	eventID, err := strconv.ParseInt(vars["eventId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /events/{id} - Invalid event ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEventID)
		return
	}

	force := r.URL.Query().Get("force") == "true"

	result, err := h.useCase.Execute(r.Context(), &deleteEvent.Request{
		EventID: eventID,
		Force:   force,
	})
	if err != nil {
		var forceErr *domain.RequiresForceError

		switch {
		case errors.As(err, &forceErr):
			h.logger.Warn("DELETE /events/{id} - Force required: event_id=%d, booked=%d, registrations=%d",
				eventID, forceErr.BookedSlots, forceErr.ActiveRegistrations)
			handlers.RespondRequiresForce(w, forceErr, msgRequiresForce)

		case errors.Is(err, deleteEvent.ErrEventNotFound):
			h.logger.Warn("DELETE /events/{id} - Event not found: event_id=%d", eventID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /events/{id} - Failed to delete event: event_id=%d, error=%v", eventID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /events/{id} - Event deleted successfully: event_id=%d, force=%v", eventID, force)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
