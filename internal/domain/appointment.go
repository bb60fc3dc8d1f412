package domain

import "time"

// AppointmentStatus represents the state of an appointment.
type AppointmentStatus string

const (
	AppointmentStatusActive    AppointmentStatus = "active"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Appointment binds one applicant to one slot. EventID is denormalized from
// the slot's window so that per-event uniqueness and cascades do not need a
// join through windows.
type Appointment struct {
	ID          int64
	EventID     int64
	SlotID      int64
	ApplicantID int64
	AssignedBy  int64
	Status      AppointmentStatus
	Notes       *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
}

// IsActive reports whether the appointment still occupies its slot.
func (a *Appointment) IsActive() bool {
	return a.Status == AppointmentStatusActive
}

// IsCancelled reports whether the appointment has been cancelled.
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}
