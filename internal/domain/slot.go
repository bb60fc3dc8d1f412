package domain

import "time"

// SlotStatus represents the booking state of a slot.
type SlotStatus string

const (
	SlotStatusFree      SlotStatus = "free"
	SlotStatusBooked    SlotStatus = "booked"
	SlotStatusCancelled SlotStatus = "cancelled"
)

// Slot is a single bookable time unit generated from a window. A slot is
// booked iff exactly one active appointment references it.
type Slot struct {
	ID       int64
	WindowID int64
	StartsAt time.Time
	EndsAt   time.Time
	Status   SlotStatus

	CreatedAt time.Time
}

// IsFree reports whether the slot can accept an appointment.
func (s *Slot) IsFree() bool {
	return s.Status == SlotStatusFree
}

// IsBooked reports whether the slot holds an active appointment.
func (s *Slot) IsBooked() bool {
	return s.Status == SlotStatusBooked
}

// SlotFilter фильтр для получения слотов события
type SlotFilter struct {
	EventID  int64       // Обязательный параметр
	WindowID *int64      // nil - все окна события
	Status   *SlotStatus // nil - все статусы
}
