package domain

import (
	"errors"
	"fmt"
)

// ErrRequiresForce сигнальная ошибка для errors.Is: удаление затрагивает
// активные записи и требует явного подтверждения (force)
var ErrRequiresForce = errors.New("deletion requires force confirmation")

// RequiresForceError возвращается при отказе от удаления сущности,
// затрагивающего активные записи или регистрации. Вызывающая сторона
// может повторить операцию с флагом force.
type RequiresForceError struct {
	BookedSlots         int
	ActiveRegistrations int

	// ApplicantName заполняется при отказе от удаления отдельного слота:
	// имя заявителя с активной записью (или "#<id>", если сервис приема
	// недоступен). Для событий и окон остается пустым.
	ApplicantName string
}

func (e *RequiresForceError) Error() string {
	return fmt.Sprintf("%v: %d booked slots, %d active registrations",
		ErrRequiresForce, e.BookedSlots, e.ActiveRegistrations)
}

// Is сопоставляет ошибку с сигнальной ErrRequiresForce
func (e *RequiresForceError) Is(target error) bool {
	return target == ErrRequiresForce
}
