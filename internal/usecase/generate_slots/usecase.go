package generate_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/ADM-SchedulingService/internal/domain"
	windowRepo "github.com/m04kA/ADM-SchedulingService/internal/infra/storage/window"
)

// UseCase use case генерации слотов из окна доступности.
// Операция идемпотентна: уже существующие слоты пропускаются на уровне БД,
// повторный вызов возвращает CreatedCount = 0.
type UseCase struct {
	windowRepo WindowRepository
	slotRepo   SlotRepository
	txManager  TransactionManager
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	windowRepo WindowRepository,
	slotRepo SlotRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		windowRepo: windowRepo,
		slotRepo:   slotRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

// Execute выполняет генерацию слотов окна
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GenerateSlots: window=%d", req.WindowID)

	if req.WindowID <= 0 {
		return nil, fmt.Errorf("%w: windowId must be positive", ErrInvalidInput)
	}

	var resp *Response

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// Окно блокируется (FOR UPDATE) на время генерации
		window, err := uc.windowRepo.GetByID(txCtx, req.WindowID)
		if err != nil {
			if errors.Is(err, windowRepo.ErrWindowNotFound) {
				uc.logger.Warn("GenerateSlots: window id=%d not found", req.WindowID)
				return ErrWindowNotFound
			}
			uc.logger.Error("GenerateSlots: failed to get window id=%d: %v", req.WindowID, err)
			return fmt.Errorf("%w: failed to get window: %v", ErrInternal, err)
		}

		slots, err := buildSlots(window)
		if err != nil {
			uc.logger.Warn("GenerateSlots: window id=%d is malformed: %v", req.WindowID, err)
			return err
		}

		var created int64
		if len(slots) > 0 {
			created, err = uc.slotRepo.BulkCreate(txCtx, slots)
			if err != nil {
				uc.logger.Error("GenerateSlots: failed to create slots for window id=%d: %v", req.WindowID, err)
				return fmt.Errorf("%w: failed to create slots: %v", ErrInternal, err)
			}
		}

		// Окно помечается обработанным даже при нулевом результате, чтобы
		// отличать "генерация не запускалась" от "генерация ничего не дала"
		if err := uc.windowRepo.MarkSlotsGenerated(txCtx, window.ID); err != nil {
			uc.logger.Error("GenerateSlots: failed to mark window id=%d: %v", window.ID, err)
			return fmt.Errorf("%w: failed to mark window: %v", ErrInternal, err)
		}

		resp = &Response{
			WindowID:     window.ID,
			CreatedCount: created,
			TotalSlots:   len(slots),
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("GenerateSlots: window=%d, created=%d of %d slots",
		resp.WindowID, resp.CreatedCount, resp.TotalSlots)
	return resp, nil
}

// buildSlots раскладывает окно на последовательные слоты.
// Неполный остаток в конце окна отбрасывается.
func buildSlots(window *domain.Window) ([]*domain.Slot, error) {
	if !domain.IsAllowedSlotMinutes(window.SlotMinutes) {
		return nil, fmt.Errorf("%w: slotMinutes=%d is not allowed", ErrInvalidWindow, window.SlotMinutes)
	}

	startsAt, err := window.StartsAt()
	if err != nil {
		return nil, fmt.Errorf("%w: invalid start time: %v", ErrInvalidWindow, err)
	}
	endsAt, err := window.EndsAt()
	if err != nil {
		return nil, fmt.Errorf("%w: invalid end time: %v", ErrInvalidWindow, err)
	}

	if !startsAt.Before(endsAt) {
		return nil, fmt.Errorf("%w: start time must be before end time", ErrInvalidWindow)
	}

	duration := time.Duration(window.SlotMinutes) * time.Minute
	slots := make([]*domain.Slot, 0, window.SlotCount())

	for cursor := startsAt; !cursor.Add(duration).After(endsAt); cursor = cursor.Add(duration) {
		slots = append(slots, &domain.Slot{
			WindowID: window.ID,
			StartsAt: cursor,
			EndsAt:   cursor.Add(duration),
			Status:   domain.SlotStatusFree,
		})
	}

	return slots, nil
}
