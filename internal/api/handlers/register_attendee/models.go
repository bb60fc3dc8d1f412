package register_attendee

import (
	"time"

	registerAttendee "github.com/m04kA/ADM-SchedulingService/internal/usecase/register_attendee"
)

// RegisterAttendeeRequest HTTP request model
type RegisterAttendeeRequest struct {
	Notes *string `json:"notes,omitempty"`
}

// RegistrationResponse HTTP response model
type RegistrationResponse struct {
	RegistrationID int64  `json:"registrationId"`
	EventID        int64  `json:"eventId"`
	UserID         int64  `json:"userId"`
	Status         string `json:"status"`
	RegisteredAt   string `json:"registeredAt"` // ISO 8601
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *registerAttendee.Response) *RegistrationResponse {
	return &RegistrationResponse{
		RegistrationID: resp.RegistrationID,
		EventID:        resp.EventID,
		UserID:         resp.UserID,
		Status:         resp.Status,
		RegisteredAt:   resp.RegisteredAt.Format(time.RFC3339),
	}
}
