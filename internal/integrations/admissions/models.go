package admissions

// Applicant модель заявителя из сервиса приема.
// Заявитель считается допущенным к собеседованию, если прошел
// предварительный отбор (статус ведет сервис приема).
type Applicant struct {
	ID        int64  `json:"id"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	ProgramID *int64 `json:"program_id,omitempty"`
}

// ErrorResponse модель ошибки от сервиса приема
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
