package register_attendee

import (
	"context"

	"github.com/m04kA/ADM-SchedulingService/internal/domain"
)

// EventRepository интерфейс репозитория событий
type EventRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
}

// RegistrationRepository интерфейс репозитория регистраций
type RegistrationRepository interface {
	Create(ctx context.Context, reg *domain.Registration) (*domain.Registration, error)
	CountByEvent(ctx context.Context, eventID int64) (int, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
