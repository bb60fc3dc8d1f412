package appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrSlotTaken возвращается при нарушении уникального индекса
	// "одна активная запись на слот"
	ErrSlotTaken = errors.New("appointment.repository: slot already has an active appointment")

	// ErrApplicantAlreadyBooked возвращается при нарушении уникального индекса
	// "одна активная запись заявителя на событие"
	ErrApplicantAlreadyBooked = errors.New("appointment.repository: applicant already has an active appointment for this event")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("appointment.repository: failed to scan row")
)
