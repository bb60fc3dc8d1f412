package models

import (
	"time"

	"github.com/m04kA/ADM-SchedulingService/internal/domain"
)

// Request модели

// MarkAttendanceRequest запрос на отметку посещаемости
type MarkAttendanceRequest struct {
	EventID int64  `json:"eventId"`
	UserID  int64  `json:"userId"`
	Action  string `json:"action"` // attended | no_show | reset
}

// Response модели

// RegistrationResponse ответ с данными регистрации
type RegistrationResponse struct {
	ID           int64     `json:"id"`
	EventID      int64     `json:"eventId"`
	UserID       int64     `json:"userId"`
	Status       string    `json:"status"`
	Notes        *string   `json:"notes,omitempty"`
	RegisteredAt time.Time `json:"registeredAt"`
	AttendedAt   *string   `json:"attendedAt,omitempty"` // ISO 8601
}

// RegistrationListResponse ответ со списком регистраций
type RegistrationListResponse struct {
	Registrations []RegistrationResponse `json:"registrations"`
}

// Методы конвертации

// FromDomainRegistration конвертирует domain модель в DTO
func FromDomainRegistration(r *domain.Registration) *RegistrationResponse {
	if r == nil {
		return nil
	}

	resp := &RegistrationResponse{
		ID:           r.ID,
		EventID:      r.EventID,
		UserID:       r.UserID,
		Status:       string(r.Status),
		Notes:        r.Notes,
		RegisteredAt: r.RegisteredAt,
	}

	if r.AttendedAt != nil {
		attendedStr := r.AttendedAt.Format(time.RFC3339)
		resp.AttendedAt = &attendedStr
	}

	return resp
}

// FromDomainRegistrationList конвертирует список domain моделей в DTO
func FromDomainRegistrationList(regs []*domain.Registration) *RegistrationListResponse {
	resp := &RegistrationListResponse{
		Registrations: make([]RegistrationResponse, 0, len(regs)),
	}

	for _, reg := range regs {
		if regResp := FromDomainRegistration(reg); regResp != nil {
			resp.Registrations = append(resp.Registrations, *regResp)
		}
	}

	return resp
}
