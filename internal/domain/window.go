package domain

import (
	"time"

	"github.com/m04kA/ADM-SchedulingService/pkg/types"
)

// Window is an administrator-defined availability block of one event: a date,
// a start/end time of day and the duration of the slots generated from it.
// Windows exist only under single-capacity events.
type Window struct {
	ID          int64
	EventID     int64
	Date        time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString
	SlotMinutes int

	// SlotsGenerated is set once a generation pass has completed for this
	// window, even when that pass produced zero slots.
	SlotsGenerated bool

	CreatedAt time.Time
}

// SlotCount returns how many whole slots fit into the window. The trailing
// remainder shorter than SlotMinutes is discarded.
func (w *Window) SlotCount() int {
	minutes, err := w.StartTime.MinutesBetween(w.EndTime)
	if err != nil || minutes <= 0 || w.SlotMinutes <= 0 {
		return 0
	}
	return minutes / w.SlotMinutes
}

// StartsAt returns the timestamp of the window start.
func (w *Window) StartsAt() (time.Time, error) {
	return w.StartTime.At(w.Date)
}

// EndsAt returns the timestamp of the window end.
func (w *Window) EndsAt() (time.Time, error) {
	return w.EndTime.At(w.Date)
}
