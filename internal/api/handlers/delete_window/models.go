package delete_window

import deleteWindow "github.com/m04kA/ADM-SchedulingService/internal/usecase/delete_window"

// DeleteWindowResponse HTTP response model
type DeleteWindowResponse struct {
	WindowID              int64 `json:"windowId"`
	CancelledAppointments int64 `json:"cancelledAppointments"`
	DeletedSlots          int64 `json:"deletedSlots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *deleteWindow.Response) *DeleteWindowResponse {
	return &DeleteWindowResponse{
		WindowID:              resp.WindowID,
		CancelledAppointments: resp.CancelledAppointments,
		DeletedSlots:          resp.DeletedSlots,
	}
}
