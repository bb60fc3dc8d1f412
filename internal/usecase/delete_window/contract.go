package delete_window

import (
	"context"

	"github.com/m04kA/ADM-SchedulingService/internal/domain"
)

// WindowRepository интерфейс репозитория окон доступности
type WindowRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Window, error)
	Delete(ctx context.Context, id int64) error
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	CountBookedByWindow(ctx context.Context, windowID int64) (int, error)
	DeleteByWindow(ctx context.Context, windowID int64) (int64, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	CancelAllByWindow(ctx context.Context, windowID int64, reason string) (int64, error)
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
