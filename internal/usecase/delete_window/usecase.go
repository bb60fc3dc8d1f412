package delete_window

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/ADM-SchedulingService/internal/domain"
	windowRepo "github.com/m04kA/ADM-SchedulingService/internal/infra/storage/window"
)

// Причина отмены, записываемая в затронутые записи при каскадном удалении
const cancellationReason = "availability window deleted by administrator"

// UseCase use case удаления окна доступности.
// Окно с занятыми слотами удаляется только с подтверждением force;
// затронутые записи каскадно отменяются.
type UseCase struct {
	windowRepo      WindowRepository
	slotRepo        SlotRepository
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	windowRepo WindowRepository,
	slotRepo SlotRepository,
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		windowRepo:      windowRepo,
		slotRepo:        slotRepo,
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет удаление окна
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("DeleteWindow: window=%d, force=%v", req.WindowID, req.Force)

	if req.WindowID <= 0 {
		return nil, fmt.Errorf("%w: windowId must be positive", ErrInvalidInput)
	}

	var resp *Response

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// Окно блокируется (FOR UPDATE) на время каскада
		if _, err := uc.windowRepo.GetByID(txCtx, req.WindowID); err != nil {
			if errors.Is(err, windowRepo.ErrWindowNotFound) {
				uc.logger.Warn("DeleteWindow: window id=%d not found", req.WindowID)
				return ErrWindowNotFound
			}
			uc.logger.Error("DeleteWindow: failed to get window id=%d: %v", req.WindowID, err)
			return fmt.Errorf("%w: failed to get window: %v", ErrInternal, err)
		}

		bookedSlots, err := uc.slotRepo.CountBookedByWindow(txCtx, req.WindowID)
		if err != nil {
			uc.logger.Error("DeleteWindow: failed to count booked slots: %v", err)
			return fmt.Errorf("%w: failed to count booked slots: %v", ErrInternal, err)
		}

		if bookedSlots > 0 && !req.Force {
			uc.logger.Warn("DeleteWindow: window id=%d has %d booked slots, force required",
				req.WindowID, bookedSlots)
			return &domain.RequiresForceError{BookedSlots: bookedSlots}
		}

		cancelledAppointments, err := uc.appointmentRepo.CancelAllByWindow(txCtx, req.WindowID, cancellationReason)
		if err != nil {
			uc.logger.Error("DeleteWindow: failed to cancel appointments: %v", err)
			return fmt.Errorf("%w: failed to cancel appointments: %v", ErrInternal, err)
		}

		deletedSlots, err := uc.slotRepo.DeleteByWindow(txCtx, req.WindowID)
		if err != nil {
			uc.logger.Error("DeleteWindow: failed to delete slots: %v", err)
			return fmt.Errorf("%w: failed to delete slots: %v", ErrInternal, err)
		}

		if err := uc.windowRepo.Delete(txCtx, req.WindowID); err != nil {
			if errors.Is(err, windowRepo.ErrWindowNotFound) {
				return ErrWindowNotFound
			}
			uc.logger.Error("DeleteWindow: failed to delete window id=%d: %v", req.WindowID, err)
			return fmt.Errorf("%w: failed to delete window: %v", ErrInternal, err)
		}

		resp = &Response{
			WindowID:              req.WindowID,
			CancelledAppointments: cancelledAppointments,
			DeletedSlots:          deletedSlots,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("DeleteWindow: window id=%d deleted (appointments=%d, slots=%d)",
		resp.WindowID, resp.CancelledAppointments, resp.DeletedSlots)
	return resp, nil
}
