package delete_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/ADM-SchedulingService/internal/domain"
	appointmentRepo "github.com/m04kA/ADM-SchedulingService/internal/infra/storage/appointment"
	slotRepo "github.com/m04kA/ADM-SchedulingService/internal/infra/storage/slot"
	"github.com/m04kA/ADM-SchedulingService/pkg/ptr"
)

// Причина отмены, записываемая в затронутую запись при удалении слота
const cancellationReason = "slot deleted by administrator"

// UseCase use case удаления отдельного слота.
// Занятый слот удаляется только с подтверждением force;
// активная запись каскадно отменяется. Отказ без force сопровождается
// именем заявителя, чтобы администратор видел, чью запись он отменяет.
type UseCase struct {
	slotRepo         SlotRepository
	appointmentRepo  AppointmentRepository
	admissionsClient AdmissionsClient
	txManager        TransactionManager
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	appointmentRepo AppointmentRepository,
	admissionsClient AdmissionsClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:         slotRepo,
		appointmentRepo:  appointmentRepo,
		admissionsClient: admissionsClient,
		txManager:        txManager,
		logger:           logger,
	}
}

// Execute выполняет удаление слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("DeleteSlot: slot=%d, force=%v", req.SlotID, req.Force)

	if req.SlotID <= 0 {
		return nil, fmt.Errorf("%w: slotId must be positive", ErrInvalidInput)
	}

	var resp *Response
	var bookedApplicantID int64

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// Слот блокируется (FOR UPDATE) на время удаления
		slot, err := uc.slotRepo.GetByID(txCtx, req.SlotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				uc.logger.Warn("DeleteSlot: slot id=%d not found", req.SlotID)
				return ErrSlotNotFound
			}
			uc.logger.Error("DeleteSlot: failed to get slot id=%d: %v", req.SlotID, err)
			return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
		}

		var cancelled int64

		if slot.IsBooked() {
			appointment, err := uc.appointmentRepo.GetActiveBySlot(txCtx, req.SlotID)
			if err != nil && !errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				uc.logger.Error("DeleteSlot: failed to get active appointment for slot id=%d: %v", req.SlotID, err)
				return fmt.Errorf("%w: failed to get active appointment: %v", ErrInternal, err)
			}

			if !req.Force {
				uc.logger.Warn("DeleteSlot: slot id=%d is booked, force required", req.SlotID)
				if appointment != nil {
					bookedApplicantID = appointment.ApplicantID
				}
				return &domain.RequiresForceError{BookedSlots: 1}
			}

			if appointment != nil {
				if err := uc.appointmentRepo.Cancel(txCtx, appointment.ID, ptr.Ptr(cancellationReason)); err != nil {
					uc.logger.Error("DeleteSlot: failed to cancel appointment id=%d: %v", appointment.ID, err)
					return fmt.Errorf("%w: failed to cancel appointment: %v", ErrInternal, err)
				}
				cancelled = 1
			}
		}

		if err := uc.slotRepo.Delete(txCtx, req.SlotID); err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				return ErrSlotNotFound
			}
			uc.logger.Error("DeleteSlot: failed to delete slot id=%d: %v", req.SlotID, err)
			return fmt.Errorf("%w: failed to delete slot: %v", ErrInternal, err)
		}

		resp = &Response{
			SlotID:                req.SlotID,
			CancelledAppointments: cancelled,
		}
		return nil
	})

	if err != nil {
		// Имя заявителя запрашивается после возврата транзакции:
		// внешний HTTP вызов не должен удерживать блокировки БД
		var forceErr *domain.RequiresForceError
		if errors.As(err, &forceErr) && bookedApplicantID > 0 {
			forceErr.ApplicantName = uc.applicantName(ctx, bookedApplicantID)
		}
		return nil, err
	}

	uc.logger.Info("DeleteSlot: slot id=%d deleted (appointments cancelled=%d)",
		resp.SlotID, resp.CancelledAppointments)
	return resp, nil
}

// applicantName получает имя заявителя для force-ответа.
// При недоступности сервиса приема используется идентификатор.
func (uc *UseCase) applicantName(ctx context.Context, applicantID int64) string {
	applicant, err := uc.admissionsClient.GetApplicant(ctx, applicantID)
	if err != nil || applicant.FullName == "" {
		uc.logger.Warn("DeleteSlot: failed to resolve applicant id=%d name: %v", applicantID, err)
		return fmt.Sprintf("#%d", applicantID)
	}
	return applicant.FullName
}
