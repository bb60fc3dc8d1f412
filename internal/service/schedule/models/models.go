package models

import (
	"time"

	"github.com/m04kA/ADM-SchedulingService/internal/domain"
	"github.com/m04kA/ADM-SchedulingService/pkg/types"
)

// Request модели

// AddWindowRequest запрос на добавление окна доступности
type AddWindowRequest struct {
	EventID     int64            `json:"eventId"`
	Date        time.Time        `json:"date"`
	StartTime   types.TimeString `json:"startTime"` // "09:00"
	EndTime     types.TimeString `json:"endTime"`   // "14:00"
	SlotMinutes int              `json:"slotMinutes"`
}

// ListSlotsRequest запрос на получение слотов события
type ListSlotsRequest struct {
	EventID  int64   `json:"eventId"`
	WindowID *int64  `json:"windowId,omitempty"`
	Status   *string `json:"status,omitempty"` // free | booked | cancelled
}

// Response модели

// WindowResponse ответ с данными окна доступности
type WindowResponse struct {
	ID             int64  `json:"id"`
	EventID        int64  `json:"eventId"`
	Date           string `json:"date"`      // "2025-10-15"
	StartTime      string `json:"startTime"` // "09:00"
	EndTime        string `json:"endTime"`   // "14:00"
	SlotMinutes    int    `json:"slotMinutes"`
	SlotsGenerated bool   `json:"slotsGenerated"`

	CreatedAt time.Time `json:"createdAt"`
}

// SlotResponse ответ с данными слота
type SlotResponse struct {
	ID       int64  `json:"id"`
	WindowID int64  `json:"windowId"`
	StartsAt string `json:"startsAt"` // ISO 8601
	EndsAt   string `json:"endsAt"`   // ISO 8601
	Status   string `json:"status"`
}

// SlotListResponse ответ со списком слотов
type SlotListResponse struct {
	Slots []SlotResponse `json:"slots"`
}

// Методы конвертации

// ToDomainWindow конвертирует request в domain модель
func (r *AddWindowRequest) ToDomainWindow() *domain.Window {
	return &domain.Window{
		EventID:     r.EventID,
		Date:        r.Date,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		SlotMinutes: r.SlotMinutes,
	}
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListSlotsRequest) ToDomainFilter() domain.SlotFilter {
	filter := domain.SlotFilter{
		EventID:  r.EventID,
		WindowID: r.WindowID,
	}

	if r.Status != nil {
		status := domain.SlotStatus(*r.Status)
		filter.Status = &status
	}

	return filter
}

// FromDomainWindow конвертирует domain модель в DTO
func FromDomainWindow(w *domain.Window) *WindowResponse {
	if w == nil {
		return nil
	}

	return &WindowResponse{
		ID:             w.ID,
		EventID:        w.EventID,
		Date:           w.Date.Format(domain.DateFormat),
		StartTime:      w.StartTime.String(),
		EndTime:        w.EndTime.String(),
		SlotMinutes:    w.SlotMinutes,
		SlotsGenerated: w.SlotsGenerated,
		CreatedAt:      w.CreatedAt,
	}
}

// FromDomainSlotList конвертирует список domain моделей в DTO
func FromDomainSlotList(slots []*domain.Slot) *SlotListResponse {
	resp := &SlotListResponse{
		Slots: make([]SlotResponse, 0, len(slots)),
	}

	for _, slot := range slots {
		resp.Slots = append(resp.Slots, SlotResponse{
			ID:       slot.ID,
			WindowID: slot.WindowID,
			StartsAt: slot.StartsAt.Format(time.RFC3339),
			EndsAt:   slot.EndsAt.Format(time.RFC3339),
			Status:   string(slot.Status),
		})
	}

	return resp
}
