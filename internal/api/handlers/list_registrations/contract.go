package list_registrations

import (
	"context"

	"github.com/m04kA/ADM-SchedulingService/internal/service/registrations/models"
)

type RegistrationService interface {
	ListByEvent(ctx context.Context, eventID int64) (*models.RegistrationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
