package register_attendee

import "errors"

var (
	// ErrEventNotFound возвращается, когда событие не найдено
	ErrEventNotFound = errors.New("register_attendee: event not found")

	// ErrNotRegistrationEvent возвращается, когда событие не использует
	// поток регистраций (single-capacity события назначаются через слоты)
	ErrNotRegistrationEvent = errors.New("register_attendee: event does not accept registrations")

	// ErrEventNotOpen возвращается, когда событие не принимает регистрации
	// в текущем статусе жизненного цикла
	ErrEventNotOpen = errors.New("register_attendee: event is not open for registration")

	// ErrAlreadyRegistered возвращается при повторной регистрации пользователя
	ErrAlreadyRegistered = errors.New("register_attendee: user already registered for this event")

	// ErrCapacityExceeded возвращается, когда все места события заняты
	ErrCapacityExceeded = errors.New("register_attendee: event capacity exceeded")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("register_attendee: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("register_attendee: internal error")
)
