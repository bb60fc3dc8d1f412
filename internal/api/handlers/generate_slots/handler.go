package generate_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/ADM-SchedulingService/internal/api/handlers"
	generateSlots "github.com/m04kA/ADM-SchedulingService/internal/usecase/generate_slots"
)

const (
	msgInvalidWindowID = "identificador de ventana no válido"
	msgNotFound        = "ventana no encontrada"
	msgInvalidWindow   = "la ventana está mal definida y no permite generar horarios"
)

type Handler struct {
	useCase GenerateSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GenerateSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/events/windows/{windowId}/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	windowID, err := strconv.ParseInt(vars["windowId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /events/windows/{id}/slots - Invalid window ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWindowID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &generateSlots.Request{WindowID: windowID})
	if err != nil {
		switch {
		case errors.Is(err, generateSlots.ErrWindowNotFound):
			h.logger.Warn("POST /events/windows/{id}/slots - Window not found: window_id=%d", windowID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, generateSlots.ErrInvalidWindow):
			h.logger.Warn("POST /events/windows/{id}/slots - Malformed window: window_id=%d, error=%v",
				windowID, err)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		default:
			h.logger.Error("POST /events/windows/{id}/slots - Failed to generate slots: window_id=%d, error=%v",
				windowID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /events/windows/{id}/slots - Generated %d of %d slots: window_id=%d",
		result.CreatedCount, result.TotalSlots, windowID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
