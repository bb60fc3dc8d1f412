package delete_event

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/ADM-SchedulingService/internal/domain"
	eventRepo "github.com/m04kA/ADM-SchedulingService/internal/infra/storage/event"
)

// Причина отмены, записываемая в затронутые записи при каскадном удалении
const cancellationReason = "event deleted by administrator"

// UseCase use case удаления события.
// Двухфазный протокол: удаление события с занятыми слотами или регистрациями
// отклоняется с подсчетом затронутых сущностей; повторный вызов с force=true
// каскадно отменяет записи и удаляет дочерние сущности.
type UseCase struct {
	eventRepo        EventRepository
	windowRepo       WindowRepository
	slotRepo         SlotRepository
	appointmentRepo  AppointmentRepository
	registrationRepo RegistrationRepository
	txManager        TransactionManager
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	eventRepo EventRepository,
	windowRepo WindowRepository,
	slotRepo SlotRepository,
	appointmentRepo AppointmentRepository,
	registrationRepo RegistrationRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		eventRepo:        eventRepo,
		windowRepo:       windowRepo,
		slotRepo:         slotRepo,
		appointmentRepo:  appointmentRepo,
		registrationRepo: registrationRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

// Execute выполняет удаление события
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("DeleteEvent: event=%d, force=%v", req.EventID, req.Force)

	if req.EventID <= 0 {
		return nil, fmt.Errorf("%w: eventId must be positive", ErrInvalidInput)
	}

	var resp *Response

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// Событие блокируется (FOR UPDATE) на время каскада
		if _, err := uc.eventRepo.GetByID(txCtx, req.EventID); err != nil {
			if errors.Is(err, eventRepo.ErrEventNotFound) {
				uc.logger.Warn("DeleteEvent: event id=%d not found", req.EventID)
				return ErrEventNotFound
			}
			uc.logger.Error("DeleteEvent: failed to get event id=%d: %v", req.EventID, err)
			return fmt.Errorf("%w: failed to get event: %v", ErrInternal, err)
		}

		bookedSlots, err := uc.slotRepo.CountBookedByEvent(txCtx, req.EventID)
		if err != nil {
			uc.logger.Error("DeleteEvent: failed to count booked slots: %v", err)
			return fmt.Errorf("%w: failed to count booked slots: %v", ErrInternal, err)
		}

		registrations, err := uc.registrationRepo.CountByEvent(txCtx, req.EventID)
		if err != nil {
			uc.logger.Error("DeleteEvent: failed to count registrations: %v", err)
			return fmt.Errorf("%w: failed to count registrations: %v", ErrInternal, err)
		}

		// Первая фаза: без force удаление затронутого события отклоняется
		if (bookedSlots > 0 || registrations > 0) && !req.Force {
			uc.logger.Warn("DeleteEvent: event id=%d has %d booked slots and %d registrations, force required",
				req.EventID, bookedSlots, registrations)
			return &domain.RequiresForceError{
				BookedSlots:         bookedSlots,
				ActiveRegistrations: registrations,
			}
		}

		// Вторая фаза: каскадное удаление снизу вверх
		cancelledAppointments, err := uc.appointmentRepo.CancelAllByEvent(txCtx, req.EventID, cancellationReason)
		if err != nil {
			uc.logger.Error("DeleteEvent: failed to cancel appointments: %v", err)
			return fmt.Errorf("%w: failed to cancel appointments: %v", ErrInternal, err)
		}

		deletedSlots, err := uc.slotRepo.DeleteByEvent(txCtx, req.EventID)
		if err != nil {
			uc.logger.Error("DeleteEvent: failed to delete slots: %v", err)
			return fmt.Errorf("%w: failed to delete slots: %v", ErrInternal, err)
		}

		deletedWindows, err := uc.windowRepo.DeleteByEvent(txCtx, req.EventID)
		if err != nil {
			uc.logger.Error("DeleteEvent: failed to delete windows: %v", err)
			return fmt.Errorf("%w: failed to delete windows: %v", ErrInternal, err)
		}

		deletedRegistrations, err := uc.registrationRepo.DeleteByEvent(txCtx, req.EventID)
		if err != nil {
			uc.logger.Error("DeleteEvent: failed to delete registrations: %v", err)
			return fmt.Errorf("%w: failed to delete registrations: %v", ErrInternal, err)
		}

		if err := uc.eventRepo.Delete(txCtx, req.EventID); err != nil {
			if errors.Is(err, eventRepo.ErrEventNotFound) {
				return ErrEventNotFound
			}
			uc.logger.Error("DeleteEvent: failed to delete event id=%d: %v", req.EventID, err)
			return fmt.Errorf("%w: failed to delete event: %v", ErrInternal, err)
		}

		resp = &Response{
			EventID:               req.EventID,
			CancelledAppointments: cancelledAppointments,
			DeletedSlots:          deletedSlots,
			DeletedWindows:        deletedWindows,
			DeletedRegistrations:  deletedRegistrations,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("DeleteEvent: event id=%d deleted (appointments=%d, slots=%d, windows=%d, registrations=%d)",
		resp.EventID, resp.CancelledAppointments, resp.DeletedSlots, resp.DeletedWindows, resp.DeletedRegistrations)
	return resp, nil
}
