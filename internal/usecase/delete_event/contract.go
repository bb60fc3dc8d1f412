package delete_event

import (
	"context"

	"github.com/m04kA/ADM-SchedulingService/internal/domain"
)

// EventRepository интерфейс репозитория событий
type EventRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
	Delete(ctx context.Context, id int64) error
}

// WindowRepository интерфейс репозитория окон доступности
type WindowRepository interface {
	DeleteByEvent(ctx context.Context, eventID int64) (int64, error)
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	CountBookedByEvent(ctx context.Context, eventID int64) (int, error)
	DeleteByEvent(ctx context.Context, eventID int64) (int64, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	CancelAllByEvent(ctx context.Context, eventID int64, reason string) (int64, error)
}

// RegistrationRepository интерфейс репозитория регистраций
type RegistrationRepository interface {
	CountByEvent(ctx context.Context, eventID int64) (int, error)
	DeleteByEvent(ctx context.Context, eventID int64) (int64, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
