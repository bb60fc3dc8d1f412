package register_attendee

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/ADM-SchedulingService/internal/domain"
	eventRepo "github.com/m04kA/ADM-SchedulingService/internal/infra/storage/event"
	registrationRepo "github.com/m04kA/ADM-SchedulingService/internal/infra/storage/registration"
)

// UseCase use case регистрации участника на событие с ограниченной
// или неограниченной вместимостью
type UseCase struct {
	eventRepo        EventRepository
	registrationRepo RegistrationRepository
	txManager        TransactionManager
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	eventRepo EventRepository,
	registrationRepo RegistrationRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		eventRepo:        eventRepo,
		registrationRepo: registrationRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

// Execute выполняет регистрацию участника.
// Проверка вместимости и вставка выполняются в сериализуемой транзакции,
// поэтому событие не может быть переполнено конкурентными регистрациями.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RegisterAttendee: event=%d, user=%d", req.EventID, req.UserID)

	// 1. Валидация входных данных
	if req.EventID <= 0 {
		return nil, fmt.Errorf("%w: eventId must be positive", ErrInvalidInput)
	}
	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: userId must be positive", ErrInvalidInput)
	}
	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return nil, fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	var result *domain.Registration

	// 2. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем событие с блокировкой (FOR UPDATE)
		event, err := uc.eventRepo.GetByID(txCtx, req.EventID)
		if err != nil {
			if errors.Is(err, eventRepo.ErrEventNotFound) {
				uc.logger.Warn("RegisterAttendee: event id=%d not found", req.EventID)
				return ErrEventNotFound
			}
			uc.logger.Error("RegisterAttendee: failed to get event id=%d: %v", req.EventID, err)
			return fmt.Errorf("%w: failed to get event: %v", ErrInternal, err)
		}

		// 2.2. Single-capacity события используют назначение слотов, а не регистрации
		if !event.UsesRegistrations() {
			uc.logger.Warn("RegisterAttendee: event id=%d has capacity type %s", req.EventID, event.CapacityType)
			return ErrNotRegistrationEvent
		}

		// 2.3. Регистрации принимаются только открытыми событиями
		if event.Status != domain.EventStatusPublished && event.Status != domain.EventStatusOngoing {
			uc.logger.Warn("RegisterAttendee: event id=%d is %s, registration closed", req.EventID, event.Status)
			return ErrEventNotOpen
		}

		// 2.4. Проверяем вместимость
		if event.HasCapacityLimit() {
			count, err := uc.registrationRepo.CountByEvent(txCtx, req.EventID)
			if err != nil {
				uc.logger.Error("RegisterAttendee: failed to count registrations: %v", err)
				return fmt.Errorf("%w: failed to count registrations: %v", ErrInternal, err)
			}
			if count >= *event.MaxCapacity {
				uc.logger.Warn("RegisterAttendee: event id=%d is full (%d/%d)",
					req.EventID, count, *event.MaxCapacity)
				return ErrCapacityExceeded
			}
			uc.logger.Info("RegisterAttendee: event id=%d has %d/%d seats taken",
				req.EventID, count, *event.MaxCapacity)
		}

		// 2.5. Создаем регистрацию
		registration := &domain.Registration{
			EventID: req.EventID,
			UserID:  req.UserID,
			Status:  domain.RegistrationStatusRegistered,
			Notes:   req.Notes,
		}

		created, err := uc.registrationRepo.Create(txCtx, registration)
		if err != nil {
			if errors.Is(err, registrationRepo.ErrDuplicateRegistration) {
				uc.logger.Warn("RegisterAttendee: user=%d already registered for event=%d",
					req.UserID, req.EventID)
				return ErrAlreadyRegistered
			}
			uc.logger.Error("RegisterAttendee: failed to create registration: %v", err)
			return fmt.Errorf("%w: failed to create registration: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("RegisterAttendee: successfully registered user=%d for event=%d, id=%d",
		req.UserID, req.EventID, result.ID)

	return &Response{
		RegistrationID: result.ID,
		EventID:        result.EventID,
		UserID:         result.UserID,
		Status:         string(result.Status),
		RegisteredAt:   result.RegisteredAt,
	}, nil
}
