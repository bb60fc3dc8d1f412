package assign_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/ADM-SchedulingService/internal/domain"
	appointmentRepo "github.com/m04kA/ADM-SchedulingService/internal/infra/storage/appointment"
	eventRepo "github.com/m04kA/ADM-SchedulingService/internal/infra/storage/event"
	slotRepo "github.com/m04kA/ADM-SchedulingService/internal/infra/storage/slot"
	windowRepo "github.com/m04kA/ADM-SchedulingService/internal/infra/storage/window"
)

// UseCase use case назначения слота заявителю оператором
type UseCase struct {
	eventRepo        EventRepository
	windowRepo       WindowRepository
	slotRepo         SlotRepository
	appointmentRepo  AppointmentRepository
	admissionsClient AdmissionsClient
	txManager        TransactionManager
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	eventRepo EventRepository,
	windowRepo WindowRepository,
	slotRepo SlotRepository,
	appointmentRepo AppointmentRepository,
	admissionsClient AdmissionsClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		eventRepo:        eventRepo,
		windowRepo:       windowRepo,
		slotRepo:         slotRepo,
		appointmentRepo:  appointmentRepo,
		admissionsClient: admissionsClient,
		txManager:        txManager,
		logger:           logger,
	}
}

// Execute выполняет назначение слота.
// Переход слота free -> booked и создание записи выполняются в сериализуемой
// транзакции, поэтому два оператора не могут занять один слот одновременно.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AssignSlot: event=%d, slot=%d, applicant=%d, by=%d",
		req.EventID, req.SlotID, req.ApplicantID, req.AssignedBy)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AssignSlot: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем событие
	event, err := uc.eventRepo.GetByID(ctx, req.EventID)
	if err != nil {
		if errors.Is(err, eventRepo.ErrEventNotFound) {
			uc.logger.Warn("AssignSlot: event id=%d not found", req.EventID)
			return nil, ErrEventNotFound
		}
		uc.logger.Error("AssignSlot: failed to get event id=%d: %v", req.EventID, err)
		return nil, fmt.Errorf("%w: failed to get event: %v", ErrInternal, err)
	}

	if !event.IsSingleCapacity() {
		uc.logger.Warn("AssignSlot: event id=%d has capacity type %s", req.EventID, event.CapacityType)
		return nil, ErrNotSingleCapacity
	}

	// 3. Проверяем допуск заявителя до открытия транзакции:
	// внешний HTTP вызов не должен удерживать блокировки БД
	eligible, err := uc.admissionsClient.IsEligible(ctx, req.ApplicantID, event.ProgramID)
	if err != nil {
		uc.logger.Error("AssignSlot: eligibility check failed for applicant=%d: %v", req.ApplicantID, err)
		return nil, fmt.Errorf("%w: eligibility check failed: %v", ErrInternal, err)
	}
	if !eligible {
		uc.logger.Warn("AssignSlot: applicant=%d is not eligible for event=%d", req.ApplicantID, req.EventID)
		return nil, ErrNotEligible
	}

	var result *domain.Appointment
	var bookedSlot *domain.Slot

	// 4. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Получаем слот с блокировкой (FOR UPDATE)
		slot, err := uc.slotRepo.GetByID(txCtx, req.SlotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				uc.logger.Warn("AssignSlot: slot id=%d not found", req.SlotID)
				return ErrSlotNotFound
			}
			uc.logger.Error("AssignSlot: failed to get slot id=%d: %v", req.SlotID, err)
			return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
		}

		// 4.2. Проверяем, что слот принадлежит указанному событию
		window, err := uc.windowRepo.GetByID(txCtx, slot.WindowID)
		if err != nil {
			if errors.Is(err, windowRepo.ErrWindowNotFound) {
				return ErrSlotNotFound
			}
			uc.logger.Error("AssignSlot: failed to get window id=%d: %v", slot.WindowID, err)
			return fmt.Errorf("%w: failed to get window: %v", ErrInternal, err)
		}
		if window.EventID != req.EventID {
			uc.logger.Warn("AssignSlot: slot id=%d belongs to event=%d, not event=%d",
				req.SlotID, window.EventID, req.EventID)
			return ErrSlotNotFound
		}

		// 4.3. У заявителя может быть только одна активная запись на событие
		hasActive, err := uc.appointmentRepo.HasActiveForApplicant(txCtx, req.EventID, req.ApplicantID)
		if err != nil {
			uc.logger.Error("AssignSlot: failed to check active appointments: %v", err)
			return fmt.Errorf("%w: failed to check active appointments: %v", ErrInternal, err)
		}
		if hasActive {
			uc.logger.Warn("AssignSlot: applicant=%d already booked for event=%d", req.ApplicantID, req.EventID)
			return ErrAlreadyBooked
		}

		// 4.4. Условный переход free -> booked
		if err := uc.slotRepo.MarkBooked(txCtx, req.SlotID); err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFree) {
				uc.logger.Warn("AssignSlot: slot id=%d is not free", req.SlotID)
				return ErrSlotNotFree
			}
			uc.logger.Error("AssignSlot: failed to book slot id=%d: %v", req.SlotID, err)
			return fmt.Errorf("%w: failed to book slot: %v", ErrInternal, err)
		}

		// 4.5. Создаем запись
		appointment := &domain.Appointment{
			EventID:     req.EventID,
			SlotID:      req.SlotID,
			ApplicantID: req.ApplicantID,
			AssignedBy:  req.AssignedBy,
			Status:      domain.AppointmentStatusActive,
			Notes:       req.Notes,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			// Страховка на случай гонки, не замеченной блокировками
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				return ErrSlotNotFree
			}
			if errors.Is(err, appointmentRepo.ErrApplicantAlreadyBooked) {
				return ErrAlreadyBooked
			}
			uc.logger.Error("AssignSlot: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		bookedSlot = slot
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("AssignSlot: successfully created appointment id=%d for slot=%d", result.ID, req.SlotID)

	return &Response{
		AppointmentID: result.ID,
		EventID:       result.EventID,
		SlotID:        result.SlotID,
		ApplicantID:   result.ApplicantID,
		AssignedBy:    result.AssignedBy,
		Status:        string(result.Status),
		StartsAt:      bookedSlot.StartsAt,
		EndsAt:        bookedSlot.EndsAt,
		CreatedAt:     result.CreatedAt,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.EventID <= 0 {
		return fmt.Errorf("%w: eventId must be positive", ErrInvalidInput)
	}
	if req.SlotID <= 0 {
		return fmt.Errorf("%w: slotId must be positive", ErrInvalidInput)
	}
	if req.ApplicantID <= 0 {
		return fmt.Errorf("%w: applicantId must be positive", ErrInvalidInput)
	}
	if req.AssignedBy <= 0 {
		return fmt.Errorf("%w: assignedBy must be positive", ErrInvalidInput)
	}
	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}
	return nil
}
