package register_attendee

import "time"

// Request модель запроса на регистрацию участника
type Request struct {
	EventID int64   // ID события
	UserID  int64   // ID пользователя
	Notes   *string // Дополнительные заметки (опционально)
}

// Response модель ответа с созданной регистрацией
type Response struct {
	RegistrationID int64     // ID регистрации
	EventID        int64     // ID события
	UserID         int64     // ID пользователя
	Status         string    // Статус регистрации
	RegisteredAt   time.Time // Время регистрации
}
