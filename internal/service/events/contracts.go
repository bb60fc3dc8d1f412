package events

import (
	"context"

	"github.com/m04kA/ADM-SchedulingService/internal/domain"
)

// EventRepository интерфейс репозитория событий
type EventRepository interface {
	Create(ctx context.Context, ev *domain.Event) (*domain.Event, error)
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
	List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error)
}

// WindowRepository интерфейс репозитория окон доступности
type WindowRepository interface {
	ListByEvent(ctx context.Context, eventID int64) ([]*domain.Window, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
