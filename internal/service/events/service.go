package events

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/ADM-SchedulingService/internal/domain"
	eventRepo "github.com/m04kA/ADM-SchedulingService/internal/infra/storage/event"
	"github.com/m04kA/ADM-SchedulingService/internal/service/events/models"
)

// Service сервис для работы с событиями приемной кампании
type Service struct {
	eventRepo  EventRepository
	windowRepo WindowRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса событий
func NewService(eventRepo EventRepository, windowRepo WindowRepository, logger Logger) *Service {
	return &Service{
		eventRepo:  eventRepo,
		windowRepo: windowRepo,
		logger:     logger,
	}
}

// Create создает новое событие
func (s *Service) Create(ctx context.Context, req *models.CreateEventRequest) (*models.EventResponse, error) {
	s.logger.Info("Create: creating event title=%q, type=%s, capacity=%s by user=%d",
		req.Title, req.Type, req.CapacityType, req.CreatedBy)

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.eventRepo.Create(ctx, req.ToDomainEvent())
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created event id=%d", created.ID)
	return models.FromDomainEvent(created), nil
}

// GetByID получает событие по ID.
// Для single-capacity событий в ответ включаются окна доступности.
func (s *Service) GetByID(ctx context.Context, id int64) (*models.EventResponse, error) {
	s.logger.Info("GetByID: fetching event id=%d", id)

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, eventRepo.ErrEventNotFound) {
			s.logger.Warn("GetByID: event id=%d not found", id)
			return nil, ErrEventNotFound
		}
		s.logger.Error("GetByID: repository error for event id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainEvent(event)

	if event.IsSingleCapacity() {
		windows, err := s.windowRepo.ListByEvent(ctx, id)
		if err != nil {
			s.logger.Error("GetByID: failed to fetch windows for event id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: GetByID - failed to fetch windows: %v", ErrInternal, err)
		}

		resp.Windows = make([]models.WindowResponse, 0, len(windows))
		for _, w := range windows {
			resp.Windows = append(resp.Windows, models.FromDomainWindow(w))
		}
	}

	s.logger.Info("GetByID: successfully fetched event id=%d", id)
	return resp, nil
}

// List получает список событий с фильтрацией по программе, статусу и видимости
func (s *Service) List(ctx context.Context, req *models.ListEventsRequest) (*models.EventListResponse, error) {
	s.logger.Info("List: fetching events, programID=%v, status=%v, visibleOnly=%v",
		req.ProgramID, req.Status, req.VisibleOnly)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	events, err := s.eventRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d events", len(events))
	return models.FromDomainEventList(events), nil
}

// validateCreateRequest валидирует запрос на создание события
func validateCreateRequest(req *models.CreateEventRequest) error {
	if req.CreatedBy <= 0 {
		return fmt.Errorf("%w: createdBy must be positive", ErrInvalidInput)
	}

	if req.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if len(req.Title) > domain.MaxTitleLength {
		return fmt.Errorf("%w: title must not exceed %d characters", ErrInvalidInput, domain.MaxTitleLength)
	}

	if req.Location != nil && len(*req.Location) > domain.MaxLocationLength {
		return fmt.Errorf("%w: location must not exceed %d characters", ErrInvalidInput, domain.MaxLocationLength)
	}

	if !domain.IsValidEventType(domain.EventType(req.Type)) {
		return fmt.Errorf("%w: unsupported event type %q", ErrInvalidInput, req.Type)
	}

	capacityType := domain.CapacityType(req.CapacityType)
	if !domain.IsValidCapacityType(capacityType) {
		return fmt.Errorf("%w: unsupported capacity type %q", ErrInvalidInput, req.CapacityType)
	}

	// Для multiple вместимость обязательна, для остальных типов игнорируется
	if capacityType == domain.CapacityMultiple {
		if req.MaxCapacity == nil || *req.MaxCapacity < domain.MinEventCapacity {
			return fmt.Errorf("%w: maxCapacity must be at least %d for multiple capacity events",
				ErrInvalidInput, domain.MinEventCapacity)
		}
	}

	if req.ProgramID != nil && *req.ProgramID <= 0 {
		return fmt.Errorf("%w: programId must be positive", ErrInvalidInput)
	}

	if req.EventDate != nil && req.EventEndDate != nil && req.EventEndDate.Before(*req.EventDate) {
		return fmt.Errorf("%w: eventEndDate must not be before eventDate", ErrInvalidInput)
	}

	return nil
}
