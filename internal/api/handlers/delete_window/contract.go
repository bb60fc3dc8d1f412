package delete_window

import (
	"context"

	deleteWindow "github.com/m04kA/ADM-SchedulingService/internal/usecase/delete_window"
)

type DeleteWindowUseCase interface {
	Execute(ctx context.Context, req *deleteWindow.Request) (*deleteWindow.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
