package register_attendee

import (
	"context"

	registerAttendee "github.com/m04kA/ADM-SchedulingService/internal/usecase/register_attendee"
)

type RegisterAttendeeUseCase interface {
	Execute(ctx context.Context, req *registerAttendee.Request) (*registerAttendee.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
