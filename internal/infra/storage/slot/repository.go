package slot

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/ADM-SchedulingService/internal/domain"
	"github.com/m04kA/ADM-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/ADM-SchedulingService/pkg/psqlbuilder"
)

var slotColumns = []string{
	"id",
	"window_id",
	"starts_at",
	"ends_at",
	"status",
	"created_at",
}

// Repository репозиторий для работы со слотами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// BulkCreate вставляет слоты пачкой и возвращает количество реально созданных.
// Идемпотентность обеспечивается на уровне хранилища: уникальный индекс
// (window_id, starts_at) + ON CONFLICT DO NOTHING, поэтому повторная генерация
// не создаёт дубликатов и закрывает гонку между чтением и вставкой.
func (r *Repository) BulkCreate(ctx context.Context, slots []*domain.Slot) (int64, error) {
	if len(slots) == 0 {
		return 0, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("slots").
		Columns("window_id", "starts_at", "ends_at", "status")

	for _, s := range slots {
		insertBuilder = insertBuilder.Values(s.WindowID, s.StartsAt, s.EndsAt, s.Status)
	}

	query, args, err := insertBuilder.
		Suffix("ON CONFLICT (window_id, starts_at) DO NOTHING").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: BulkCreate - build insert query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: BulkCreate - execute insert: %v", ErrExecQuery, err)
	}

	created, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: BulkCreate - get rows affected: %v", ErrExecQuery, err)
	}

	return created, nil
}

// GetByID получает слот по ID
// Внутри транзакции блокирует строку (FOR UPDATE) для защиты от гонки
// при одновременном назначении двух заявителей на один слот
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(slotColumns...).
		From("slots").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	s, err := scanSlot(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan slot: %v", ErrScanRow, err)
	}

	return s, nil
}

// ListByEvent получает слоты события с фильтрацией по окну и статусу
func (r *Repository) ListByEvent(ctx context.Context, filter domain.SlotFilter) ([]*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"s.id",
		"s.window_id",
		"s.starts_at",
		"s.ends_at",
		"s.status",
		"s.created_at",
	).
		From("slots s").
		Join("windows w ON w.id = s.window_id").
		Where(squirrel.Eq{"w.event_id": filter.EventID})

	if filter.WindowID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"s.window_id": *filter.WindowID})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"s.status": *filter.Status})
	}

	query, args, err := selectBuilder.OrderBy("s.starts_at ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByEvent - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByEvent - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*domain.Slot, 0)
	for rows.Next() {
		s, err := scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByEvent - scan row: %v", ErrScanRow, err)
		}
		slots = append(slots, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByEvent - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// MarkBooked выполняет условный переход free -> booked.
// Проигравший гонку получает ErrSlotNotFree, а не молчаливую перезапись.
func (r *Repository) MarkBooked(ctx context.Context, id int64) error {
	return r.transition(ctx, id, domain.SlotStatusFree, domain.SlotStatusBooked, ErrSlotNotFree)
}

// Release выполняет условный переход booked -> free (отмена записи).
// Слот, который уже свободен, остаётся без изменений.
func (r *Repository) Release(ctx context.Context, id int64) error {
	return r.transition(ctx, id, domain.SlotStatusBooked, domain.SlotStatusFree, nil)
}

func (r *Repository) transition(ctx context.Context, id int64, from, to domain.SlotStatus, conflictErr error) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("slots").
		Set("status", to).
		Where(squirrel.Eq{"id": id, "status": from}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: transition - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: transition - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: transition - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 && conflictErr != nil {
		return conflictErr
	}

	return nil
}

// CountBookedByWindow подсчитывает занятые слоты окна (проверка requires_force)
func (r *Repository) CountBookedByWindow(ctx context.Context, windowID int64) (int, error) {
	return r.countBooked(ctx, squirrel.Eq{"window_id": windowID, "status": domain.SlotStatusBooked})
}

// CountBookedByEvent подсчитывает занятые слоты события (проверка requires_force)
func (r *Repository) CountBookedByEvent(ctx context.Context, eventID int64) (int, error) {
	return r.countBooked(ctx, squirrel.Expr(
		"window_id IN (SELECT id FROM windows WHERE event_id = ?) AND status = ?",
		eventID, domain.SlotStatusBooked,
	))
}

func (r *Repository) countBooked(ctx context.Context, where interface{}) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("slots").
		Where(where).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: countBooked - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: countBooked - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// Delete удаляет слот
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("slots").
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
		return ErrSlotNotFound
	}

	return nil
}

// DeleteByWindow удаляет все слоты окна (часть каскадного удаления)
func (r *Repository) DeleteByWindow(ctx context.Context, windowID int64) (int64, error) {
	return r.deleteWhere(ctx, squirrel.Eq{"window_id": windowID})
}

// DeleteByEvent удаляет все слоты события (часть каскадного удаления)
func (r *Repository) DeleteByEvent(ctx context.Context, eventID int64) (int64, error) {
	return r.deleteWhere(ctx, squirrel.Expr(
		"window_id IN (SELECT id FROM windows WHERE event_id = ?)", eventID,
	))
}

func (r *Repository) deleteWhere(ctx context.Context, where interface{}) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("slots").
		Where(where).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: deleteWhere - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: deleteWhere - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: deleteWhere - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSlot(row rowScanner) (*domain.Slot, error) {
	var s domain.Slot
	var createdAt sql.NullTime

	err := row.Scan(
		&s.ID,
		&s.WindowID,
		&s.StartsAt,
		&s.EndsAt,
		&s.Status,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	s.CreatedAt = createdAt.Time

	return &s, nil
}
