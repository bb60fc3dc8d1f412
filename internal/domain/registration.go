package domain

import "time"

// RegistrationStatus represents the attendance state of a registration.
type RegistrationStatus string

const (
	RegistrationStatusRegistered RegistrationStatus = "registered"
	RegistrationStatusAttended   RegistrationStatus = "attended"
	RegistrationStatusNoShow     RegistrationStatus = "no_show"
)

// AttendanceAction is the operator command applied to a registration.
type AttendanceAction string

const (
	AttendanceActionAttended AttendanceAction = "attended"
	AttendanceActionNoShow   AttendanceAction = "no_show"
	AttendanceActionReset    AttendanceAction = "reset"
)

// Registration is the capacity-based counterpart of an appointment, used by
// multiple/unlimited events: one row per user per event.
type Registration struct {
	ID      int64
	EventID int64
	UserID  int64
	Status  RegistrationStatus
	Notes   *string

	RegisteredAt time.Time
	AttendedAt   *time.Time
}

// Apply returns the status resulting from an attendance action. Reset returns
// to registered from any terminal state.
func (r *Registration) Apply(action AttendanceAction) (RegistrationStatus, bool) {
	switch action {
	case AttendanceActionAttended:
		return RegistrationStatusAttended, true
	case AttendanceActionNoShow:
		return RegistrationStatusNoShow, true
	case AttendanceActionReset:
		return RegistrationStatusRegistered, true
	default:
		return r.Status, false
	}
}
