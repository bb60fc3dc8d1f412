package list_events

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/ADM-SchedulingService/internal/api/handlers"
	"github.com/m04kA/ADM-SchedulingService/internal/service/events"
	"github.com/m04kA/ADM-SchedulingService/internal/service/events/models"
)

const (
	msgInvalidProgramID = "identificador de programa no válido"
	msgInvalidStatus    = "estado de evento no válido"
)

type Handler struct {
	service EventService
	logger  Logger
}

func NewHandler(service EventService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/events?programId=&status=&visibleOnly=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &models.ListEventsRequest{
		VisibleOnly: query.Get("visibleOnly") == "true",
	}

	if programIDStr := query.Get("programId"); programIDStr != "" {
		programID, err := strconv.ParseInt(programIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /events - Invalid program ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidProgramID)
			return
		}
		req.ProgramID = &programID
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, events.ErrInvalidInput):
			h.logger.Warn("GET /events - Invalid status filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /events - Failed to list events: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /events - Retrieved %d events", len(result.Events))
	handlers.RespondJSON(w, http.StatusOK, result)
}
