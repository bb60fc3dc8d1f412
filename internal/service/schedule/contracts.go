package schedule

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
	Create(ctx context.Context, win *domain.Window) (*domain.Window, error)
	ListByEvent(ctx context.Context, eventID int64) ([]*domain.Window, error)
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	ListByEvent(ctx context.Context, filter domain.SlotFilter) ([]*domain.Slot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
