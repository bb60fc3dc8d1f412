package domain

import "time"

// EventType classifies an admission event.
type EventType string

const (
	TypeInterview   EventType = "interview"
	TypeDefense     EventType = "defense"
	TypeWorkshop    EventType = "workshop"
	TypeSeminar     EventType = "seminar"
	TypeConference  EventType = "conference"
	TypeInfoSession EventType = "info_session"
	TypeOther       EventType = "other"
)

// CapacityType determines which booking flow an event uses.
// Single-capacity events schedule applicants through windows and slots (1:1);
// multiple and unlimited events use the registration list instead.
type CapacityType string

const (
	CapacitySingle    CapacityType = "single"
	CapacityMultiple  CapacityType = "multiple"
	CapacityUnlimited CapacityType = "unlimited"
)

// EventStatus represents the lifecycle status of an event.
type EventStatus string

const (
	EventStatusDraft     EventStatus = "draft"
	EventStatusPublished EventStatus = "published"
	EventStatusOngoing   EventStatus = "ongoing"
	EventStatusCompleted EventStatus = "completed"
	EventStatusCancelled EventStatus = "cancelled"
)

// Event is the aggregate root of the scheduling subsystem. It owns windows
// (for single-capacity events) or registrations (for the rest) and optionally
// scopes eligibility to one academic program.
type Event struct {
	ID          int64
	ProgramID   *int64 // nil = open to applicants of all programs
	Type        EventType
	Title       string
	Description *string
	Location    *string
	CreatedBy   int64
	Status      EventStatus

	CapacityType CapacityType
	MaxCapacity  *int // required iff CapacityType == multiple

	VisibleToStudents        bool
	RequiresRegistration     bool
	AllowsAttendanceTracking bool

	// Overall event timing for multiple/unlimited events. Single-capacity
	// events derive their timing from windows instead.
	EventDate    *time.Time
	EventEndDate *time.Time

	CreatedAt time.Time
}

// IsSingleCapacity reports whether the event uses the window/slot/appointment flow.
func (e *Event) IsSingleCapacity() bool {
	return e.CapacityType == CapacitySingle
}

// UsesRegistrations reports whether the event uses the registration-list flow.
func (e *Event) UsesRegistrations() bool {
	return e.CapacityType == CapacityMultiple || e.CapacityType == CapacityUnlimited
}

// HasCapacityLimit reports whether registrations are bounded by MaxCapacity.
func (e *Event) HasCapacityLimit() bool {
	return e.CapacityType == CapacityMultiple && e.MaxCapacity != nil
}

// EventFilter фильтр для получения списка событий
type EventFilter struct {
	ProgramID   *int64       // nil - все программы
	Status      *EventStatus // nil - все статусы
	VisibleOnly bool         // только события, видимые студентам
}
