package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/ADM-SchedulingService/internal/domain"
	eventRepo "github.com/m04kA/ADM-SchedulingService/internal/infra/storage/event"
	"github.com/m04kA/ADM-SchedulingService/internal/service/schedule/models"
)

// Service сервис для работы с расписанием single-capacity событий:
// окна доступности и порожденные из них слоты
type Service struct {
	eventRepo  EventRepository
	windowRepo WindowRepository
	slotRepo   SlotRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	eventRepo EventRepository,
	windowRepo WindowRepository,
	slotRepo SlotRepository,
	logger Logger,
) *Service {
	return &Service{
		eventRepo:  eventRepo,
		windowRepo: windowRepo,
		slotRepo:   slotRepo,
		logger:     logger,
	}
}

// AddWindow добавляет окно доступности к single-capacity событию.
// Слоты из окна не порождаются - это отдельная операция генерации.
func (s *Service) AddWindow(ctx context.Context, req *models.AddWindowRequest) (*models.WindowResponse, error) {
	s.logger.Info("AddWindow: event=%d, date=%s, time=%s-%s, slotMinutes=%d",
		req.EventID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime, req.SlotMinutes)

	if err := validateAddWindowRequest(req); err != nil {
		s.logger.Warn("AddWindow: validation failed: %v", err)
		return nil, err
	}

	event, err := s.eventRepo.GetByID(ctx, req.EventID)
	if err != nil {
		if errors.Is(err, eventRepo.ErrEventNotFound) {
			s.logger.Warn("AddWindow: event id=%d not found", req.EventID)
			return nil, ErrEventNotFound
		}
		s.logger.Error("AddWindow: repository error for event id=%d: %v", req.EventID, err)
		return nil, fmt.Errorf("%w: AddWindow - repository error: %v", ErrInternal, err)
	}

	// Окна имеют смысл только для событий с потоком слотов
	if !event.IsSingleCapacity() {
		s.logger.Warn("AddWindow: event id=%d has capacity type %s, windows not supported",
			req.EventID, event.CapacityType)
		return nil, ErrNotSingleCapacity
	}

	created, err := s.windowRepo.Create(ctx, req.ToDomainWindow())
	if err != nil {
		s.logger.Error("AddWindow: failed to create window for event id=%d: %v", req.EventID, err)
		return nil, fmt.Errorf("%w: AddWindow - failed to create window: %v", ErrInternal, err)
	}

	s.logger.Info("AddWindow: successfully created window id=%d for event id=%d (%d slots possible)",
		created.ID, req.EventID, created.SlotCount())
	return models.FromDomainWindow(created), nil
}

// ListSlots получает слоты события с фильтрацией по окну и статусу
func (s *Service) ListSlots(ctx context.Context, req *models.ListSlotsRequest) (*models.SlotListResponse, error) {
	s.logger.Info("ListSlots: event=%d, windowID=%v, status=%v", req.EventID, req.WindowID, req.Status)

	if req.Status != nil {
		status := domain.SlotStatus(*req.Status)
		if status != domain.SlotStatusFree && status != domain.SlotStatusBooked && status != domain.SlotStatusCancelled {
			s.logger.Warn("ListSlots: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: invalid slot status", ErrInvalidInput)
		}
	}

	// Проверяем существование события, чтобы отличать пустое расписание от 404
	if _, err := s.eventRepo.GetByID(ctx, req.EventID); err != nil {
		if errors.Is(err, eventRepo.ErrEventNotFound) {
			s.logger.Warn("ListSlots: event id=%d not found", req.EventID)
			return nil, ErrEventNotFound
		}
		s.logger.Error("ListSlots: repository error for event id=%d: %v", req.EventID, err)
		return nil, fmt.Errorf("%w: ListSlots - repository error: %v", ErrInternal, err)
	}

	slots, err := s.slotRepo.ListByEvent(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("ListSlots: failed to fetch slots for event id=%d: %v", req.EventID, err)
		return nil, fmt.Errorf("%w: ListSlots - failed to fetch slots: %v", ErrInternal, err)
	}

	s.logger.Info("ListSlots: successfully fetched %d slots for event id=%d", len(slots), req.EventID)
	return models.FromDomainSlotList(slots), nil
}

// validateAddWindowRequest валидирует запрос на добавление окна
func validateAddWindowRequest(req *models.AddWindowRequest) error {
	if req.EventID <= 0 {
		return fmt.Errorf("%w: eventId must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}
	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
	}

	if !req.StartTime.IsBefore(req.EndTime) {
		return fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}

	if !domain.IsAllowedSlotMinutes(req.SlotMinutes) {
		return fmt.Errorf("%w: slotMinutes must be one of %v", ErrInvalidInput, domain.AllowedSlotMinutes)
	}

	return nil
}
