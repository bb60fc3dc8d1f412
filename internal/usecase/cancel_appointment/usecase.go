package cancel_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/ADM-SchedulingService/internal/domain"
	appointmentRepo "github.com/m04kA/ADM-SchedulingService/internal/infra/storage/appointment"
)

// UseCase use case отмены записи на собеседование.
// Операция идемпотентна: повторная отмена уже отмененной записи
// завершается успешно и ничего не меняет.
type UseCase struct {
	appointmentRepo AppointmentRepository
	slotRepo        SlotRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	slotRepo SlotRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		slotRepo:        slotRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет отмену записи и освобождение слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelAppointment: appointment=%d", req.AppointmentID)

	if req.AppointmentID <= 0 {
		return nil, fmt.Errorf("%w: appointmentId must be positive", ErrInvalidInput)
	}
	if req.CancellationReason != nil && len(*req.CancellationReason) > domain.MaxCancellationReasonLength {
		return nil, fmt.Errorf("%w: cancellationReason must not exceed %d characters",
			ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	var resp *Response

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		appointment, err := uc.appointmentRepo.GetByID(txCtx, req.AppointmentID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				uc.logger.Warn("CancelAppointment: appointment id=%d not found", req.AppointmentID)
				return ErrAppointmentNotFound
			}
			uc.logger.Error("CancelAppointment: failed to get appointment id=%d: %v", req.AppointmentID, err)
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}

		// Уже отмененная запись - no-op
		if appointment.IsCancelled() {
			uc.logger.Info("CancelAppointment: appointment id=%d already cancelled", req.AppointmentID)
			resp = &Response{
				AppointmentID: appointment.ID,
				SlotID:        appointment.SlotID,
				Status:        string(appointment.Status),
				AlreadyDone:   true,
			}
			return nil
		}

		if err := uc.appointmentRepo.Cancel(txCtx, appointment.ID, req.CancellationReason); err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				// Запись отменили между чтением и обновлением - тоже no-op
				resp = &Response{
					AppointmentID: appointment.ID,
					SlotID:        appointment.SlotID,
					Status:        string(domain.AppointmentStatusCancelled),
					AlreadyDone:   true,
				}
				return nil
			}
			uc.logger.Error("CancelAppointment: failed to cancel appointment id=%d: %v", appointment.ID, err)
			return fmt.Errorf("%w: failed to cancel appointment: %v", ErrInternal, err)
		}

		// Возвращаем слот в пул свободных
		if err := uc.slotRepo.Release(txCtx, appointment.SlotID); err != nil {
			uc.logger.Error("CancelAppointment: failed to release slot id=%d: %v", appointment.SlotID, err)
			return fmt.Errorf("%w: failed to release slot: %v", ErrInternal, err)
		}

		resp = &Response{
			AppointmentID: appointment.ID,
			SlotID:        appointment.SlotID,
			Status:        string(domain.AppointmentStatusCancelled),
			AlreadyDone:   false,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CancelAppointment: appointment id=%d cancelled, slot id=%d released (alreadyDone=%v)",
		resp.AppointmentID, resp.SlotID, resp.AlreadyDone)
	return resp, nil
}
