package schedule

import "errors"

var (
	// ErrEventNotFound возвращается, когда событие не найдено
	ErrEventNotFound = errors.New("event not found")

	// ErrNotSingleCapacity возвращается при попытке работать с окнами
	// события, которое не использует поток окон и слотов
	ErrNotSingleCapacity = errors.New("event does not use windows and slots")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
