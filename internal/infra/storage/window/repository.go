package window

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/ADM-SchedulingService/internal/domain"
	"github.com/m04kA/ADM-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/ADM-SchedulingService/pkg/psqlbuilder"
)

var windowColumns = []string{
	"id",
	"event_id",
	"date",
	"start_time",
	"end_time",
	"slot_minutes",
	"slots_generated",
	"created_at",
}

// Repository репозиторий для работы с окнами доступности
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория окон
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое окно доступности
func (r *Repository) Create(ctx context.Context, win *domain.Window) (*domain.Window, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("windows").
		Columns(
			"event_id",
			"date",
			"start_time",
			"end_time",
			"slot_minutes",
		).
		Values(
			win.EventID,
			win.Date,
			win.StartTime,
			win.EndTime,
			win.SlotMinutes,
		).
		Suffix("RETURNING id, slots_generated, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&win.ID, &win.SlotsGenerated, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	win.CreatedAt = createdAt.Time

	return win, nil
}

// GetByID получает окно по ID
// Внутри транзакции блокирует строку (FOR UPDATE) - генерация слотов
// и удаление окна не должны выполняться параллельно
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Window, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(windowColumns...).
		From("windows").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	win, err := scanWindow(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrWindowNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan window: %v", ErrScanRow, err)
	}

	return win, nil
}

// ListByEvent получает все окна события в хронологическом порядке
func (r *Repository) ListByEvent(ctx context.Context, eventID int64) ([]*domain.Window, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(windowColumns...).
		From("windows").
		Where(squirrel.Eq{"event_id": eventID}).
		OrderBy("date ASC, start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByEvent - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByEvent - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	windows := make([]*domain.Window, 0)
	for rows.Next() {
		win, err := scanWindow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByEvent - scan row: %v", ErrScanRow, err)
		}
		windows = append(windows, win)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByEvent - rows error: %v", ErrScanRow, err)
	}

	return windows, nil
}

// MarkSlotsGenerated помечает окно как прошедшее генерацию слотов
func (r *Repository) MarkSlotsGenerated(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("windows").
		Set("slots_generated", true).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: MarkSlotsGenerated - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkSlotsGenerated - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkSlotsGenerated - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrWindowNotFound
	}

	return nil
}

// Delete удаляет окно
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("windows").
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
		return ErrWindowNotFound
	}

	return nil
}

// DeleteByEvent удаляет все окна события (часть каскадного удаления)
func (r *Repository) DeleteByEvent(ctx context.Context, eventID int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("windows").
		Where(squirrel.Eq{"event_id": eventID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByEvent - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByEvent - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByEvent - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanWindow(row rowScanner) (*domain.Window, error) {
	var win domain.Window
	var createdAt sql.NullTime

	err := row.Scan(
		&win.ID,
		&win.EventID,
		&win.Date,
		&win.StartTime,
		&win.EndTime,
		&win.SlotMinutes,
		&win.SlotsGenerated,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	win.CreatedAt = createdAt.Time

	return &win, nil
}
