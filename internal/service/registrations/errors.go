package registrations

import "errors"

var (
	// ErrEventNotFound возвращается, когда событие не найдено
	ErrEventNotFound = errors.New("event not found")

	// ErrRegistrationNotFound возвращается, когда регистрация не найдена
	ErrRegistrationNotFound = errors.New("registration not found")

	// ErrTrackingDisabled возвращается, когда событие не отслеживает посещаемость
	ErrTrackingDisabled = errors.New("event does not track attendance")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
