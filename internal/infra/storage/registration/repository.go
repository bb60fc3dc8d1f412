package registration

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/ADM-SchedulingService/internal/domain"
	"github.com/m04kA/ADM-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/ADM-SchedulingService/pkg/psqlbuilder"
)

const pgUniqueViolation = "23505"

var registrationColumns = []string{
	"id",
	"event_id",
	"user_id",
	"status",
	"notes",
	"registered_at",
	"attended_at",
}

// Repository репозиторий для работы с регистрациями на события
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория регистраций
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую регистрацию.
// Дубликат (event_id, user_id) транслируется в ErrDuplicateRegistration.
func (r *Repository) Create(ctx context.Context, reg *domain.Registration) (*domain.Registration, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("registrations").
		Columns("event_id", "user_id", "status", "notes").
		Values(reg.EventID, reg.UserID, reg.Status, reg.Notes).
		Suffix("RETURNING id, registered_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var registeredAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&reg.ID, &registeredAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return nil, ErrDuplicateRegistration
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	reg.RegisteredAt = registeredAt.Time

	return reg, nil
}

// GetByEventAndUser получает регистрацию пользователя на событие
func (r *Repository) GetByEventAndUser(ctx context.Context, eventID, userID int64) (*domain.Registration, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(registrationColumns...).
		From("registrations").
		Where(squirrel.Eq{"event_id": eventID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEventAndUser - build select query: %v", ErrBuildQuery, err)
	}

	reg, err := scanRegistration(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrRegistrationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEventAndUser - scan registration: %v", ErrScanRow, err)
	}

	return reg, nil
}

// CountByEvent подсчитывает регистрации события.
// Внутри транзакции блокирует строки (FOR UPDATE), чтобы проверка вместимости
// и вставка выполнялись атомарно.
func (r *Repository) CountByEvent(ctx context.Context, eventID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id").
		From("registrations").
		Where(squirrel.Eq{"event_id": eventID})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountByEvent - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: CountByEvent - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		count++
	}

	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("%w: CountByEvent - rows error: %v", ErrScanRow, err)
	}

	return count, nil
}

// ListByEvent получает все регистрации события
func (r *Repository) ListByEvent(ctx context.Context, eventID int64) ([]*domain.Registration, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(registrationColumns...).
		From("registrations").
		Where(squirrel.Eq{"event_id": eventID}).
		OrderBy("registered_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByEvent - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByEvent - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	regs := make([]*domain.Registration, 0)
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByEvent - scan row: %v", ErrScanRow, err)
		}
		regs = append(regs, reg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByEvent - rows error: %v", ErrScanRow, err)
	}

	return regs, nil
}

// UpdateStatus обновляет статус посещаемости регистрации
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.RegistrationStatus, attendedAt *time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("registrations").
		Set("status", status).
		Set("attended_at", attendedAt).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrRegistrationNotFound
	}

	return nil
}

// DeleteByEvent удаляет все регистрации события (часть каскадного удаления)
func (r *Repository) DeleteByEvent(ctx context.Context, eventID int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("registrations").
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

func scanRegistration(row rowScanner) (*domain.Registration, error) {
	var reg domain.Registration
	var registeredAt sql.NullTime

	err := row.Scan(
		&reg.ID,
		&reg.EventID,
		&reg.UserID,
		&reg.Status,
		&reg.Notes,
		&registeredAt,
		&reg.AttendedAt,
	)
	if err != nil {
		return nil, err
	}

	reg.RegisteredAt = registeredAt.Time

	return &reg, nil
}
