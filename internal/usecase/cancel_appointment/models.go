package cancel_appointment

// Request модель запроса на отмену записи
type Request struct {
	AppointmentID      int64   // ID записи
	CancellationReason *string // Причина отмены (опционально)
}

// Response модель ответа после отмены
type Response struct {
	AppointmentID int64  // ID записи
	SlotID        int64  // ID освобожденного слота
	Status        string // Итоговый статус записи
	AlreadyDone   bool   // true, если запись уже была отменена ранее
}
