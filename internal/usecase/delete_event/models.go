package delete_event

// Request модель запроса на удаление события
type Request struct {
	EventID int64 // ID события
	Force   bool  // Подтверждение удаления с активными записями
}

// Response модель ответа с результатом каскадного удаления
type Response struct {
	EventID               int64 // ID удаленного события
	CancelledAppointments int64 // Отмененные записи
	DeletedSlots          int64 // Удаленные слоты
	DeletedWindows        int64 // Удаленные окна
	DeletedRegistrations  int64 // Удаленные регистрации
}
