package generate_slots

import "errors"

var (
	// ErrWindowNotFound возвращается, когда окно не найдено
	ErrWindowNotFound = errors.New("generate_slots: window not found")

	// ErrInvalidWindow возвращается, когда окно некорректно определено
	// (время конца не позже начала или недопустимая длительность слота)
	ErrInvalidWindow = errors.New("generate_slots: window is malformed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("generate_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("generate_slots: internal error")
)
