package get_eligible_applicants

import (
	"net/http"
	"strconv"

	"github.com/m04kA/ADM-SchedulingService/internal/api/handlers"
	"github.com/m04kA/ADM-SchedulingService/internal/integrations/admissions"
)

const (
	msgInvalidProgramID = "identificador de programa no válido"
)

// EligibleApplicantsResponse HTTP response model
type EligibleApplicantsResponse struct {
	Applicants []admissions.Applicant `json:"applicants"`
}

type Handler struct {
	client AdmissionsClient
	logger Logger
}

func NewHandler(client AdmissionsClient, logger Logger) *Handler {
	return &Handler{
		client: client,
		logger: logger,
	}
}

// Handle GET /api/v1/eligible-applicants?programId=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var programID *int64

	if programIDStr := r.URL.Query().Get("programId"); programIDStr != "" {
		id, err := strconv.ParseInt(programIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /eligible-applicants - Invalid program ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidProgramID)
			return
		}
		programID = &id
	}

	applicants, err := h.client.ListEligibleApplicants(r.Context(), programID)
	if err != nil {
		h.logger.Error("GET /eligible-applicants - Failed to fetch applicants: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /eligible-applicants - Retrieved %d applicants", len(applicants))
	handlers.RespondJSON(w, http.StatusOK, EligibleApplicantsResponse{Applicants: applicants})
}
