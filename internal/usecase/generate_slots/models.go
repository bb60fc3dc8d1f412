package generate_slots

// Request модель запроса на генерацию слотов окна
type Request struct {
	WindowID int64 // ID окна доступности
}

// Response модель ответа с результатом генерации
type Response struct {
	WindowID     int64 // ID окна
	CreatedCount int64 // Количество созданных слотов (0 при повторной генерации)
	TotalSlots   int   // Сколько слотов помещается в окно
}
