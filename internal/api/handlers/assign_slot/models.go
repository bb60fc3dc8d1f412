package assign_slot

import (
	"time"

	assignSlot "github.com/m04kA/ADM-SchedulingService/internal/usecase/assign_slot"
)

// AssignSlotRequest HTTP request model
type AssignSlotRequest struct {
	ApplicantID int64   `json:"applicantId"`
	Notes       *string `json:"notes,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	AppointmentID int64  `json:"appointmentId"`
	EventID       int64  `json:"eventId"`
	SlotID        int64  `json:"slotId"`
	ApplicantID   int64  `json:"applicantId"`
	AssignedBy    int64  `json:"assignedBy"`
	Status        string `json:"status"`
	StartsAt      string `json:"startsAt"` // ISO 8601
	EndsAt        string `json:"endsAt"`   // ISO 8601
	CreatedAt     string `json:"createdAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *assignSlot.Response) *AppointmentResponse {
	return &AppointmentResponse{
		AppointmentID: resp.AppointmentID,
		EventID:       resp.EventID,
		SlotID:        resp.SlotID,
		ApplicantID:   resp.ApplicantID,
		AssignedBy:    resp.AssignedBy,
		Status:        resp.Status,
		StartsAt:      resp.StartsAt.Format(time.RFC3339),
		EndsAt:        resp.EndsAt.Format(time.RFC3339),
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
}
