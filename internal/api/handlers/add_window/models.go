package add_window

import (
	"time"

	"github.com/m04kA/ADM-SchedulingService/internal/domain"
	"github.com/m04kA/ADM-SchedulingService/internal/service/schedule/models"
	"github.com/m04kA/ADM-SchedulingService/pkg/types"
)

// AddWindowRequest HTTP request model
type AddWindowRequest struct {
	Date        string `json:"date"`      // "2025-10-15"
	StartTime   string `json:"startTime"` // "09:00"
	EndTime     string `json:"endTime"`   // "14:00"
	SlotMinutes int    `json:"slotMinutes"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *AddWindowRequest) ToServiceRequest(eventID int64) (*models.AddWindowRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &models.AddWindowRequest{
		EventID:     eventID,
		Date:        date,
		StartTime:   startTime,
		EndTime:     endTime,
		SlotMinutes: r.SlotMinutes,
	}, nil
}
