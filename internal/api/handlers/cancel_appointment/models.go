package cancel_appointment

import cancelAppointment "github.com/m04kA/ADM-SchedulingService/internal/usecase/cancel_appointment"

// CancelAppointmentRequest HTTP request model
type CancelAppointmentRequest struct {
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// CancelAppointmentResponse HTTP response model
type CancelAppointmentResponse struct {
	AppointmentID int64  `json:"appointmentId"`
	SlotID        int64  `json:"slotId"`
	Status        string `json:"status"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *cancelAppointment.Response) *CancelAppointmentResponse {
	return &CancelAppointmentResponse{
		AppointmentID: resp.AppointmentID,
		SlotID:        resp.SlotID,
		Status:        resp.Status,
	}
}
