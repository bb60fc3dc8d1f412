package delete_slot

// Request модель запроса на удаление слота
type Request struct {
	SlotID int64 // ID слота
	Force  bool  // Подтверждение удаления занятого слота
}

// Response модель ответа с результатом удаления
type Response struct {
	SlotID                int64 // ID удаленного слота
	CancelledAppointments int64 // Отмененные записи (0 или 1)
}
