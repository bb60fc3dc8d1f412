package delete_window

// Request модель запроса на удаление окна
type Request struct {
	WindowID int64 // ID окна
	Force    bool  // Подтверждение удаления с занятыми слотами
}

// Response модель ответа с результатом каскадного удаления
type Response struct {
	WindowID              int64 // ID удаленного окна
	CancelledAppointments int64 // Отмененные записи
	DeletedSlots          int64 // Удаленные слоты
}
