package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/ADM-SchedulingService/internal/domain"
	"github.com/m04kA/ADM-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/ADM-SchedulingService/pkg/psqlbuilder"
)

// Имена частичных уникальных индексов из миграций
const (
	uniqueActiveSlotIndex      = "uq_appointments_active_slot"
	uniqueActiveApplicantIndex = "uq_appointments_active_applicant"
)

const pgUniqueViolation = "23505"

var appointmentColumns = []string{
	"id",
	"event_id",
	"slot_id",
	"applicant_id",
	"assigned_by",
	"status",
	"notes",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
}

// Repository репозиторий для работы с записями на собеседование
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись.
// Нарушения частичных уникальных индексов транслируются в доменные ошибки:
// занятый слот -> ErrSlotTaken, повторная запись заявителя -> ErrApplicantAlreadyBooked.
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"event_id",
			"slot_id",
			"applicant_id",
			"assigned_by",
			"status",
			"notes",
		).
		Values(
			appt.EventID,
			appt.SlotID,
			appt.ApplicantID,
			appt.AssignedBy,
			appt.Status,
			appt.Notes,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&appt.ID, &createdAt)
	if err != nil {
		if uniqueErr := mapUniqueViolation(err); uniqueErr != nil {
			return nil, uniqueErr
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time

	return appt, nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetActiveBySlot получает активную запись слота, если она есть
func (r *Repository) GetActiveBySlot(ctx context.Context, slotID int64) (*domain.Appointment, error) {
	return r.getOne(ctx, squirrel.Eq{
		"slot_id": slotID,
		"status":  domain.AppointmentStatusActive,
	})
}

// HasActiveForApplicant проверяет, есть ли у заявителя активная запись на событие
func (r *Repository) HasActiveForApplicant(ctx context.Context, eventID, applicantID int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("appointments").
		Where(squirrel.Eq{
			"event_id":     eventID,
			"applicant_id": applicantID,
			"status":       domain.AppointmentStatusActive,
		}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: HasActiveForApplicant - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: HasActiveForApplicant - scan count: %v", ErrScanRow, err)
	}

	return count > 0, nil
}

// Cancel отменяет активную запись с указанием причины.
// Возвращает ErrAppointmentNotFound, если активной записи с таким ID нет.
func (r *Repository) Cancel(ctx context.Context, id int64, reason *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", domain.AppointmentStatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": domain.AppointmentStatusActive}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// CancelAllByEvent отменяет все активные записи события (force-удаление)
func (r *Repository) CancelAllByEvent(ctx context.Context, eventID int64, reason string) (int64, error) {
	return r.cancelWhere(ctx, squirrel.Eq{
		"event_id": eventID,
		"status":   domain.AppointmentStatusActive,
	}, reason)
}

// CancelAllByWindow отменяет все активные записи на слоты окна (force-удаление)
func (r *Repository) CancelAllByWindow(ctx context.Context, windowID int64, reason string) (int64, error) {
	return r.cancelWhere(ctx, squirrel.Expr(
		"slot_id IN (SELECT id FROM slots WHERE window_id = ?) AND status = ?",
		windowID, domain.AppointmentStatusActive,
	), reason)
}

func (r *Repository) cancelWhere(ctx context.Context, where interface{}, reason string) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", domain.AppointmentStatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Where(where).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: cancelWhere - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: cancelWhere - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: cancelWhere - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

func (r *Repository) getOne(ctx context.Context, where interface{}) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - build select query: %v", ErrBuildQuery, err)
	}

	var appt domain.Appointment
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appt.ID,
		&appt.EventID,
		&appt.SlotID,
		&appt.ApplicantID,
		&appt.AssignedBy,
		&appt.Status,
		&appt.Notes,
		&appt.CancellationReason,
		&appt.CancelledAt,
		&createdAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - scan appointment: %v", ErrScanRow, err)
	}

	appt.CreatedAt = createdAt.Time

	return &appt, nil
}

// mapUniqueViolation переводит нарушение уникального индекса в доменную ошибку
func mapUniqueViolation(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != pgUniqueViolation {
		return nil
	}

	switch pqErr.Constraint {
	case uniqueActiveSlotIndex:
		return ErrSlotTaken
	case uniqueActiveApplicantIndex:
		return ErrApplicantAlreadyBooked
	default:
		return nil
	}
}
