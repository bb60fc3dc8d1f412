package create_event

import (
	"time"

	"github.com/m04kA/ADM-SchedulingService/internal/domain"
	"github.com/m04kA/ADM-SchedulingService/internal/service/events/models"
)

// CreateEventRequest HTTP request model
type CreateEventRequest struct {
	ProgramID    *int64  `json:"programId,omitempty"`
	Type         string  `json:"type"`
	Title        string  `json:"title"`
	Description  *string `json:"description,omitempty"`
	Location     *string `json:"location,omitempty"`
	CapacityType string  `json:"capacityType"`
	MaxCapacity  *int    `json:"maxCapacity,omitempty"`

	VisibleToStudents        bool `json:"visibleToStudents"`
	RequiresRegistration     bool `json:"requiresRegistration"`
	AllowsAttendanceTracking bool `json:"allowsAttendanceTracking"`

	EventDate    *string `json:"eventDate,omitempty"`    // "2025-10-15"
	EventEndDate *string `json:"eventEndDate,omitempty"` // "2025-10-16"
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateEventRequest) ToServiceRequest(createdBy int64) (*models.CreateEventRequest, error) {
	req := &models.CreateEventRequest{
		CreatedBy:                createdBy,
		ProgramID:                r.ProgramID,
		Type:                     r.Type,
		Title:                    r.Title,
		Description:              r.Description,
		Location:                 r.Location,
		CapacityType:             r.CapacityType,
		MaxCapacity:              r.MaxCapacity,
		VisibleToStudents:        r.VisibleToStudents,
		RequiresRegistration:     r.RequiresRegistration,
		AllowsAttendanceTracking: r.AllowsAttendanceTracking,
	}

	if r.EventDate != nil {
		eventDate, err := time.Parse(domain.DateFormat, *r.EventDate)
		if err != nil {
			return nil, err
		}
		req.EventDate = &eventDate
	}
	if r.EventEndDate != nil {
		endDate, err := time.Parse(domain.DateFormat, *r.EventEndDate)
		if err != nil {
			return nil, err
		}
		req.EventEndDate = &endDate
	}

	return req, nil
}
