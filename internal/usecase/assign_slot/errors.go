package assign_slot

import "errors"

var (
	// ErrEventNotFound возвращается, когда событие не найдено
	ErrEventNotFound = errors.New("assign_slot: event not found")

	// ErrSlotNotFound возвращается, когда слот не найден или не принадлежит событию
	ErrSlotNotFound = errors.New("assign_slot: slot not found")

	// ErrSlotNotFree возвращается, когда слот уже занят или отменен
	ErrSlotNotFree = errors.New("assign_slot: slot is not free")

	// ErrAlreadyBooked возвращается, когда у заявителя уже есть
	// активная запись на это событие
	ErrAlreadyBooked = errors.New("assign_slot: applicant already has an active appointment for this event")

	// ErrNotEligible возвращается, когда заявитель не допущен к собеседованию
	ErrNotEligible = errors.New("assign_slot: applicant is not eligible")

	// ErrNotSingleCapacity возвращается, когда событие не использует
	// поток окон и слотов
	ErrNotSingleCapacity = errors.New("assign_slot: event does not use windows and slots")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("assign_slot: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("assign_slot: internal error")
)
