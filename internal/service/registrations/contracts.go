package registrations

import (
	"context"
	"time"

	"github.com/m04kA/ADM-SchedulingService/internal/domain"
)

// EventRepository интерфейс репозитория событий
type EventRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
}

// RegistrationRepository интерфейс репозитория регистраций
type RegistrationRepository interface {
	GetByEventAndUser(ctx context.Context, eventID, userID int64) (*domain.Registration, error)
	ListByEvent(ctx context.Context, eventID int64) ([]*domain.Registration, error)
	UpdateStatus(ctx context.Context, id int64, status domain.RegistrationStatus, attendedAt *time.Time) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
