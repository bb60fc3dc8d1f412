package generate_slots

import generateSlots "github.com/m04kA/ADM-SchedulingService/internal/usecase/generate_slots"

// GenerateSlotsResponse HTTP response model
type GenerateSlotsResponse struct {
	WindowID     int64 `json:"windowId"`
	CreatedCount int64 `json:"createdCount"`
	TotalSlots   int   `json:"totalSlots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *generateSlots.Response) *GenerateSlotsResponse {
	return &GenerateSlotsResponse{
		WindowID:     resp.WindowID,
		CreatedCount: resp.CreatedCount,
		TotalSlots:   resp.TotalSlots,
	}
}
