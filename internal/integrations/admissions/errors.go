package admissions

import "errors"

var (
	// ErrApplicantNotFound возвращается, когда заявитель не найден в системе приема
	ErrApplicantNotFound = errors.New("applicant not found in admissions service")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("admissions client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("admissions client: invalid response")
)
