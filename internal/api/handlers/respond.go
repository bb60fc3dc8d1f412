package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/m04kA/ADM-SchedulingService/internal/domain"
)

// ErrorResponse стандартная модель ошибки API
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RequiresForceResponse ответ 409 на удаление, затрагивающее активные записи.
// Клиент может повторить запрос с параметром force=true.
type RequiresForceResponse struct {
	RequiresForce       bool   `json:"requires_force"`
	BookedSlots         int    `json:"booked_slots"`
	ActiveRegistrations int    `json:"active_registrations"`
	ApplicantName       string `json:"applicant_name,omitempty"`
	Message             string `json:"message"`
}

// DecodeJSON декодирует тело запроса в указанную структуру
func DecodeJSON(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}

// RespondJSON отправляет JSON ответ с указанным статус-кодом
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		// Ошибку кодирования уже не вернуть клиенту - заголовки отправлены
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// RespondError отправляет ошибку с указанным статус-кодом и сообщением
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Code: status, Message: message})
}

// RespondBadRequest отправляет ошибку 400
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

// RespondUnauthorized отправляет ошибку 401
func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, message)
}

// RespondForbidden отправляет ошибку 403
func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, message)
}

// RespondNotFound отправляет ошибку 404
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

// RespondConflict отправляет ошибку 409
func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

// RespondUnprocessable отправляет ошибку 422
func RespondUnprocessable(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnprocessableEntity, message)
}

// RespondRequiresForce отправляет 409 с протоколом force-подтверждения
func RespondRequiresForce(w http.ResponseWriter, forceErr *domain.RequiresForceError, message string) {
	RespondJSON(w, http.StatusConflict, RequiresForceResponse{
		RequiresForce:       true,
		BookedSlots:         forceErr.BookedSlots,
		ActiveRegistrations: forceErr.ActiveRegistrations,
		ApplicantName:       forceErr.ApplicantName,
		Message:             message,
	})
}

// RespondInternalError отправляет ошибку 500
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, "internal server error")
}
