package delete_slot

import (
	"context"

	"github.com/m04kA/ADM-SchedulingService/internal/domain"
	"github.com/m04kA/ADM-SchedulingService/internal/integrations/admissions"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Slot, error)
	Delete(ctx context.Context, id int64) error
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetActiveBySlot(ctx context.Context, slotID int64) (*domain.Appointment, error)
	Cancel(ctx context.Context, id int64, reason *string) error
}

// AdmissionsClient интерфейс клиента сервиса приема
type AdmissionsClient interface {
	GetApplicant(ctx context.Context, applicantID int64) (*admissions.Applicant, error)
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
