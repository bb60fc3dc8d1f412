package registrations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/ADM-SchedulingService/internal/domain"
	eventRepo "github.com/m04kA/ADM-SchedulingService/internal/infra/storage/event"
	registrationRepo "github.com/m04kA/ADM-SchedulingService/internal/infra/storage/registration"
	"github.com/m04kA/ADM-SchedulingService/internal/service/registrations/models"
)

// Service сервис для работы с регистрациями и посещаемостью
type Service struct {
	eventRepo        EventRepository
	registrationRepo RegistrationRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса регистраций
func NewService(eventRepo EventRepository, registrationRepo RegistrationRepository, logger Logger) *Service {
	return &Service{
		eventRepo:        eventRepo,
		registrationRepo: registrationRepo,
		logger:           logger,
	}
}

// MarkAttendance отмечает посещаемость зарегистрированного пользователя.
// Действие reset возвращает регистрацию в исходный статус registered.
func (s *Service) MarkAttendance(ctx context.Context, req *models.MarkAttendanceRequest) (*models.RegistrationResponse, error) {
	s.logger.Info("MarkAttendance: event=%d, user=%d, action=%s", req.EventID, req.UserID, req.Action)

	if req.EventID <= 0 || req.UserID <= 0 {
		return nil, fmt.Errorf("%w: eventId and userId must be positive", ErrInvalidInput)
	}

	event, err := s.eventRepo.GetByID(ctx, req.EventID)
	if err != nil {
		if errors.Is(err, eventRepo.ErrEventNotFound) {
			s.logger.Warn("MarkAttendance: event id=%d not found", req.EventID)
			return nil, ErrEventNotFound
		}
		s.logger.Error("MarkAttendance: repository error for event id=%d: %v", req.EventID, err)
		return nil, fmt.Errorf("%w: MarkAttendance - repository error: %v", ErrInternal, err)
	}

	if !event.AllowsAttendanceTracking {
		s.logger.Warn("MarkAttendance: event id=%d does not track attendance", req.EventID)
		return nil, ErrTrackingDisabled
	}

	reg, err := s.registrationRepo.GetByEventAndUser(ctx, req.EventID, req.UserID)
	if err != nil {
		if errors.Is(err, registrationRepo.ErrRegistrationNotFound) {
			s.logger.Warn("MarkAttendance: user=%d is not registered for event=%d", req.UserID, req.EventID)
			return nil, ErrRegistrationNotFound
		}
		s.logger.Error("MarkAttendance: repository error: %v", err)
		return nil, fmt.Errorf("%w: MarkAttendance - repository error: %v", ErrInternal, err)
	}

	newStatus, ok := reg.Apply(domain.AttendanceAction(req.Action))
	if !ok {
		s.logger.Warn("MarkAttendance: unsupported action=%s", req.Action)
		return nil, fmt.Errorf("%w: unsupported attendance action %q", ErrInvalidInput, req.Action)
	}

	// attended_at хранится только для статуса attended
	var attendedAt *time.Time
	if newStatus == domain.RegistrationStatusAttended {
		now := time.Now()
		attendedAt = &now
	}

	if err := s.registrationRepo.UpdateStatus(ctx, reg.ID, newStatus, attendedAt); err != nil {
		if errors.Is(err, registrationRepo.ErrRegistrationNotFound) {
			return nil, ErrRegistrationNotFound
		}
		s.logger.Error("MarkAttendance: failed to update registration id=%d: %v", reg.ID, err)
		return nil, fmt.Errorf("%w: MarkAttendance - failed to update status: %v", ErrInternal, err)
	}

	reg.Status = newStatus
	reg.AttendedAt = attendedAt

	s.logger.Info("MarkAttendance: registration id=%d updated to status=%s", reg.ID, newStatus)
	return models.FromDomainRegistration(reg), nil
}

// ListByEvent получает список регистраций события
func (s *Service) ListByEvent(ctx context.Context, eventID int64) (*models.RegistrationListResponse, error) {
	s.logger.Info("ListByEvent: fetching registrations for event=%d", eventID)

	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, eventRepo.ErrEventNotFound) {
			s.logger.Warn("ListByEvent: event id=%d not found", eventID)
			return nil, ErrEventNotFound
		}
		s.logger.Error("ListByEvent: repository error for event id=%d: %v", eventID, err)
		return nil, fmt.Errorf("%w: ListByEvent - repository error: %v", ErrInternal, err)
	}

	regs, err := s.registrationRepo.ListByEvent(ctx, eventID)
	if err != nil {
		s.logger.Error("ListByEvent: failed to fetch registrations for event=%d: %v", eventID, err)
		return nil, fmt.Errorf("%w: ListByEvent - failed to fetch registrations: %v", ErrInternal, err)
	}

	s.logger.Info("ListByEvent: successfully fetched %d registrations for event=%d", len(regs), eventID)
	return models.FromDomainRegistrationList(regs), nil
}
