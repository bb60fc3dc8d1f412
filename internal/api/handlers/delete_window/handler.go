package delete_window

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/ADM-SchedulingService/internal/api/handlers"
	"github.com/m04kA/ADM-SchedulingService/internal/domain"
	deleteWindow "github.com/m04kA/ADM-SchedulingService/internal/usecase/delete_window"
)

const (
	msgInvalidWindowID = "identificador de ventana no válido"
	msgNotFound        = "ventana no encontrada"
	msgRequiresForce   = "la ventana tiene horarios reservados; repita la solicitud con force=true"
)

type Handler struct {
	useCase DeleteWindowUseCase
	logger  Logger
}

func NewHandler(useCase DeleteWindowUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/events/windows/{windowId}?force=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	windowID, err := strconv.ParseInt(vars["windowId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /events/windows/{id} - Invalid window ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWindowID)
		return
	}

	force := r.URL.Query().Get("force") == "true"

	result, err := h.useCase.Execute(r.Context(), &deleteWindow.Request{
		WindowID: windowID,
		Force:    force,
	})
	if err != nil {
		var forceErr *domain.RequiresForceError

		switch {
		case errors.As(err, &forceErr):
			h.logger.Warn("DELETE /events/windows/{id} - Force required: window_id=%d, booked=%d",
				windowID, forceErr.BookedSlots)
			handlers.RespondRequiresForce(w, forceErr, msgRequiresForce)

		case errors.Is(err, deleteWindow.ErrWindowNotFound):
			h.logger.Warn("DELETE /events/windows/{id} - Window not found: window_id=%d", windowID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /events/windows/{id} - Failed to delete window: window_id=%d, error=%v",
				windowID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /events/windows/{id} - Window deleted successfully: window_id=%d, force=%v",
		windowID, force)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
