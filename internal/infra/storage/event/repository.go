package event

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/ADM-SchedulingService/internal/domain"
	"github.com/m04kA/ADM-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/ADM-SchedulingService/pkg/psqlbuilder"
)

var eventColumns = []string{
	"id",
	"program_id",
	"type",
	"title",
	"description",
	"location",
	"created_by",
	"status",
	"capacity_type",
	"max_capacity",
	"visible_to_students",
	"requires_registration",
	"allows_attendance_tracking",
	"event_date",
	"event_end_date",
	"created_at",
}

// Repository репозиторий для работы с событиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория событий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое событие
func (r *Repository) Create(ctx context.Context, ev *domain.Event) (*domain.Event, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("events").
		Columns(
			"program_id",
			"type",
			"title",
			"description",
			"location",
			"created_by",
			"status",
			"capacity_type",
			"max_capacity",
			"visible_to_students",
			"requires_registration",
			"allows_attendance_tracking",
			"event_date",
			"event_end_date",
		).
		Values(
			ev.ProgramID,
			ev.Type,
			ev.Title,
			ev.Description,
			ev.Location,
			ev.CreatedBy,
			ev.Status,
			ev.CapacityType,
			ev.MaxCapacity,
			ev.VisibleToStudents,
			ev.RequiresRegistration,
			ev.AllowsAttendanceTracking,
			ev.EventDate,
			ev.EventEndDate,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&ev.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	ev.CreatedAt = createdAt.Time

	return ev, nil
}

// GetByID получает событие по ID
// Внутри транзакции блокирует строку (FOR UPDATE) - используется каскадным удалением
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(eventColumns...).
		From("events").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	ev, err := scanEvent(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan event: %v", ErrScanRow, err)
	}

	return ev, nil
}

// List получает список событий с фильтрацией по программе, статусу и видимости
func (r *Repository) List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(eventColumns...).From("events")

	if filter.ProgramID != nil {
		// События без программы открыты для всех программ
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.Eq{"program_id": *filter.ProgramID},
			squirrel.Eq{"program_id": nil},
		})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.VisibleOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"visible_to_students": true})
	}

	query, args, err := selectBuilder.OrderBy("created_at DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	events := make([]*domain.Event, 0)
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		events = append(events, ev)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return events, nil
}

// Delete удаляет событие
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("events").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrEventNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	var ev domain.Event
	var createdAt sql.NullTime

	err := row.Scan(
		&ev.ID,
		&ev.ProgramID,
		&ev.Type,
		&ev.Title,
		&ev.Description,
		&ev.Location,
		&ev.CreatedBy,
		&ev.Status,
		&ev.CapacityType,
		&ev.MaxCapacity,
		&ev.VisibleToStudents,
		&ev.RequiresRegistration,
		&ev.AllowsAttendanceTracking,
		&ev.EventDate,
		&ev.EventEndDate,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	ev.CreatedAt = createdAt.Time

	return &ev, nil
}
