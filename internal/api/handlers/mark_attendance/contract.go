package mark_attendance

import (
	"context"

	"github.com/m04kA/ADM-SchedulingService/internal/service/registrations/models"
)

type RegistrationService interface {
	MarkAttendance(ctx context.Context, req *models.MarkAttendanceRequest) (*models.RegistrationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
