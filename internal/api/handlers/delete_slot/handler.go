package delete_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/ADM-SchedulingService/internal/api/handlers"
	"github.com/m04kA/ADM-SchedulingService/internal/domain"
	deleteSlot "github.com/m04kA/ADM-SchedulingService/internal/usecase/delete_slot"
)

const (
	msgInvalidSlotID = "identificador de horario no válido"
	msgNotFound      = "horario no encontrado"
	msgRequiresForce = "el horario tiene una cita activa; repita la solicitud con force=true"
)

type Handler struct {
	useCase DeleteSlotUseCase
	logger  Logger
}

func NewHandler(useCase DeleteSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/events/slots/{slotId}?force=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	slotID, err := strconv.ParseInt(vars["slotId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /events/slots/{id} - Invalid slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	force := r.URL.Query().Get("force") == "true"

	result, err := h.useCase.Execute(r.Context(), &deleteSlot.Request{
		SlotID: slotID,
		Force:  force,
	})
	if err != nil {
		var forceErr *domain.RequiresForceError

		switch {
		case errors.As(err, &forceErr):
			h.logger.Warn("DELETE /events/slots/{id} - Force required: slot_id=%d, applicant=%s",
				slotID, forceErr.ApplicantName)
			handlers.RespondRequiresForce(w, forceErr, msgRequiresForce)

		case errors.Is(err, deleteSlot.ErrSlotNotFound):
			h.logger.Warn("DELETE /events/slots/{id} - Slot not found: slot_id=%d", slotID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /events/slots/{id} - Failed to delete slot: slot_id=%d, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /events/slots/{id} - Slot deleted successfully: slot_id=%d, force=%v", slotID, force)
	handlers.RespondJSON(w, http.StatusOK, map[string]int64{
		"slotId":                result.SlotID,
		"cancelledAppointments": result.CancelledAppointments,
	})
}
