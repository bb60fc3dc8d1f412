package models

import (
	"errors"
	"time"

	"github.com/m04kA/ADM-SchedulingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе события
	ErrInvalidStatus = errors.New("invalid event status")
)

// Request модели

// CreateEventRequest запрос на создание события
type CreateEventRequest struct {
	CreatedBy    int64   `json:"createdBy"`
	ProgramID    *int64  `json:"programId,omitempty"` // nil - событие открыто для всех программ
	Type         string  `json:"type"`
	Title        string  `json:"title"`
	Description  *string `json:"description,omitempty"`
	Location     *string `json:"location,omitempty"`
	CapacityType string  `json:"capacityType"`
	MaxCapacity  *int    `json:"maxCapacity,omitempty"` // обязателен при capacityType = multiple

	VisibleToStudents        bool `json:"visibleToStudents"`
	RequiresRegistration     bool `json:"requiresRegistration"`
	AllowsAttendanceTracking bool `json:"allowsAttendanceTracking"`

	EventDate    *time.Time `json:"eventDate,omitempty"`
	EventEndDate *time.Time `json:"eventEndDate,omitempty"`
}

// ListEventsRequest запрос на получение списка событий
type ListEventsRequest struct {
	ProgramID   *int64  `json:"programId,omitempty"`
	Status      *string `json:"status,omitempty"`
	VisibleOnly bool    `json:"visibleOnly,omitempty"`
}

// Response модели

// EventResponse ответ с данными события
type EventResponse struct {
	ID           int64   `json:"id"`
	ProgramID    *int64  `json:"programId,omitempty"`
	Type         string  `json:"type"`
	Title        string  `json:"title"`
	Description  *string `json:"description,omitempty"`
	Location     *string `json:"location,omitempty"`
	CreatedBy    int64   `json:"createdBy"`
	Status       string  `json:"status"`
	CapacityType string  `json:"capacityType"`
	MaxCapacity  *int    `json:"maxCapacity,omitempty"`

	VisibleToStudents        bool `json:"visibleToStudents"`
	RequiresRegistration     bool `json:"requiresRegistration"`
	AllowsAttendanceTracking bool `json:"allowsAttendanceTracking"`

	EventDate    *string `json:"eventDate,omitempty"`    // "2025-10-15"
	EventEndDate *string `json:"eventEndDate,omitempty"` // "2025-10-15"

	Windows []WindowResponse `json:"windows,omitempty"` // только для single-capacity событий

	CreatedAt time.Time `json:"createdAt"`
}

// WindowResponse ответ с данными окна доступности
type WindowResponse struct {
	ID             int64  `json:"id"`
	EventID        int64  `json:"eventId"`
	Date           string `json:"date"`      // "2025-10-15"
	StartTime      string `json:"startTime"` // "09:00"
	EndTime        string `json:"endTime"`   // "14:00"
	SlotMinutes    int    `json:"slotMinutes"`
	SlotsGenerated bool   `json:"slotsGenerated"`
}

// EventListResponse ответ со списком событий
type EventListResponse struct {
	Events []EventResponse `json:"events"`
}

// Методы конвертации

// ToDomainEvent конвертирует request в domain модель
func (r *CreateEventRequest) ToDomainEvent() *domain.Event {
	return &domain.Event{
		ProgramID:                r.ProgramID,
		Type:                     domain.EventType(r.Type),
		Title:                    r.Title,
		Description:              r.Description,
		Location:                 r.Location,
		CreatedBy:                r.CreatedBy,
		Status:                   domain.EventStatusPublished,
		CapacityType:             domain.CapacityType(r.CapacityType),
		MaxCapacity:              r.MaxCapacity,
		VisibleToStudents:        r.VisibleToStudents,
		RequiresRegistration:     r.RequiresRegistration,
		AllowsAttendanceTracking: r.AllowsAttendanceTracking,
		EventDate:                r.EventDate,
		EventEndDate:             r.EventEndDate,
	}
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListEventsRequest) ToDomainFilter() (domain.EventFilter, error) {
	filter := domain.EventFilter{
		ProgramID:   r.ProgramID,
		VisibleOnly: r.VisibleOnly,
	}

	if r.Status != nil {
		status := domain.EventStatus(*r.Status)
		if !domain.IsValidEventStatus(status) {
			return filter, ErrInvalidStatus
		}
		filter.Status = &status
	}

	return filter, nil
}

// FromDomainEvent конвертирует domain модель в DTO
func FromDomainEvent(e *domain.Event) *EventResponse {
	if e == nil {
		return nil
	}

	resp := &EventResponse{
		ID:                       e.ID,
		ProgramID:                e.ProgramID,
		Type:                     string(e.Type),
		Title:                    e.Title,
		Description:              e.Description,
		Location:                 e.Location,
		CreatedBy:                e.CreatedBy,
		Status:                   string(e.Status),
		CapacityType:             string(e.CapacityType),
		MaxCapacity:              e.MaxCapacity,
		VisibleToStudents:        e.VisibleToStudents,
		RequiresRegistration:     e.RequiresRegistration,
		AllowsAttendanceTracking: e.AllowsAttendanceTracking,
		CreatedAt:                e.CreatedAt,
	}

	if e.EventDate != nil {
		dateStr := e.EventDate.Format(domain.DateFormat)
		resp.EventDate = &dateStr
	}
	if e.EventEndDate != nil {
		dateStr := e.EventEndDate.Format(domain.DateFormat)
		resp.EventEndDate = &dateStr
	}

	return resp
}

// FromDomainWindow конвертирует domain модель окна в DTO
func FromDomainWindow(w *domain.Window) WindowResponse {
	return WindowResponse{
		ID:             w.ID,
		EventID:        w.EventID,
		Date:           w.Date.Format(domain.DateFormat),
		StartTime:      w.StartTime.String(),
		EndTime:        w.EndTime.String(),
		SlotMinutes:    w.SlotMinutes,
		SlotsGenerated: w.SlotsGenerated,
	}
}

// FromDomainEventList конвертирует список domain моделей в DTO
func FromDomainEventList(events []*domain.Event) *EventListResponse {
	resp := &EventListResponse{
		Events: make([]EventResponse, 0, len(events)),
	}

	for _, event := range events {
		if eventResp := FromDomainEvent(event); eventResp != nil {
			resp.Events = append(resp.Events, *eventResp)
		}
	}

	return resp
}
