package delete_window

import "errors"

var (
	// ErrWindowNotFound возвращается, когда окно не найдено
	ErrWindowNotFound = errors.New("delete_window: window not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("delete_window: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("delete_window: internal error")
)
