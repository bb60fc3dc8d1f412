package assign_slot

import "time"

// Request модель запроса на назначение слота заявителю
type Request struct {
	EventID     int64   // ID события
	SlotID      int64   // ID слота
	ApplicantID int64   // ID заявителя
	AssignedBy  int64   // ID оператора, выполняющего назначение
	Notes       *string // Дополнительные заметки (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	AppointmentID int64     // ID созданной записи
	EventID       int64     // ID события
	SlotID        int64     // ID слота
	ApplicantID   int64     // ID заявителя
	AssignedBy    int64     // ID оператора
	Status        string    // Статус записи
	StartsAt      time.Time // Начало слота
	EndsAt        time.Time // Конец слота
	CreatedAt     time.Time // Время создания
}
