package assign_slot

import (
	"context"

	"github.com/m04kA/ADM-SchedulingService/internal/domain"
)

// EventRepository интерфейс репозитория событий
type EventRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
}

// WindowRepository интерфейс репозитория окон доступности
type WindowRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Window, error)
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Slot, error)
	MarkBooked(ctx context.Context, id int64) error
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	HasActiveForApplicant(ctx context.Context, eventID, applicantID int64) (bool, error)
}

// AdmissionsClient интерфейс клиента сервиса приема
type AdmissionsClient interface {
	IsEligible(ctx context.Context, applicantID int64, programID *int64) (bool, error)
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
