package delete_event

import deleteEvent "github.com/m04kA/ADM-SchedulingService/internal/usecase/delete_event"

// DeleteEventResponse HTTP response model
type DeleteEventResponse struct {
	EventID               int64 `json:"eventId"`
	CancelledAppointments int64 `json:"cancelledAppointments"`
	DeletedSlots          int64 `json:"deletedSlots"`
	DeletedWindows        int64 `json:"deletedWindows"`
	DeletedRegistrations  int64 `json:"deletedRegistrations"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *deleteEvent.Response) *DeleteEventResponse {
	return &DeleteEventResponse{
		EventID:               resp.EventID,
		CancelledAppointments: resp.CancelledAppointments,
		DeletedSlots:          resp.DeletedSlots,
		DeletedWindows:        resp.DeletedWindows,
		DeletedRegistrations:  resp.DeletedRegistrations,
	}
}
