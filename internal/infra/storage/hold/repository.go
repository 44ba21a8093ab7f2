package hold

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/KBS-ReservationService/internal/domain"
	"github.com/m04kA/KBS-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/KBS-ReservationService/pkg/psqlbuilder"
	"github.com/m04kA/KBS-ReservationService/pkg/types"
)

// pqUniqueViolation код ошибки PostgreSQL unique_violation
const pqUniqueViolation = "23505"

// Repository репозиторий для работы с холдами.
//
// Все мутации холдов выполняются одним условным UPDATE с предикатом
// владения и состояния - никогда read-then-write. Это единственный
// примитив защиты от гонки между двумя вызовами над одним холдом.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория холдов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var holdColumns = []string{
	"id",
	"booth_id",
	"venue",
	"booking_date",
	"start_time",
	"end_time",
	"session_id",
	"customer_email",
	"status",
	"expires_at",
	"booking_id",
	"created_at",
	"updated_at",
}

// Create вставляет новый холд со status=active.
// Нарушение частичного уникального индекса (активный холд на тот же слот
// уже существует) транслируется в ErrHoldConflict - вызывающая сторона
// не ретраит, конфликт поднимается до клиента.
func (r *Repository) Create(ctx context.Context, h *domain.Hold) (*domain.Hold, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("holds").
		Columns(
			"id",
			"booth_id",
			"venue",
			"booking_date",
			"start_time",
			"end_time",
			"session_id",
			"customer_email",
			"status",
			"expires_at",
		).
		Values(
			h.ID,
			h.BoothID,
			h.Venue,
			h.BookingDate,
			h.StartTime,
			h.EndTime,
			h.SessionID,
			h.CustomerEmail,
			h.Status,
			h.ExpiresAt,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == pqUniqueViolation {
			return nil, ErrHoldConflict
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	h.CreatedAt = createdAt.Time
	h.UpdatedAt = updatedAt.Time

	return h, nil
}

// GetByID получает холд по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Hold, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(holdColumns...).
		From("holds").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	h, err := r.scanHoldRow(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrHoldNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan hold: %v", ErrScanRow, err)
	}

	return h, nil
}

// GetLatestActiveBySession получает самый свежий активный неистекший холд сессии.
// Используется finalize, когда клиент передал sessionId вместо holdId.
func (r *Repository) GetLatestActiveBySession(ctx context.Context, sessionID string, now time.Time) (*domain.Hold, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(holdColumns...).
		From("holds").
		Where(squirrel.Eq{"session_id": sessionID, "status": domain.HoldStatusActive}).
		Where(squirrel.Gt{"expires_at": now}).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetLatestActiveBySession - build select query: %v", ErrBuildQuery, err)
	}

	h, err := r.scanHoldRow(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrHoldNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetLatestActiveBySession - scan hold: %v", ErrScanRow, err)
	}

	return h, nil
}

// Extend продлевает холд одним условным UPDATE:
//
//	SET expires_at = newExpiresAt
//	WHERE id = ? AND session_id = ? AND status = 'active' AND expires_at > now
//
// Ноль затронутых строк означает, что холд не существует, истек, уже снят,
// уже потреблен или принадлежит другой сессии - во всех случаях ErrHoldNotExtendable.
func (r *Repository) Extend(ctx context.Context, id, sessionID string, newExpiresAt, now time.Time) (*domain.Hold, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("holds").
		Set("expires_at", newExpiresAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"id":         id,
			"session_id": sessionID,
			"status":     domain.HoldStatusActive,
		}).
		Where(squirrel.Gt{"expires_at": now}).
		Suffix("RETURNING " + holdColumnsList()).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Extend - build update query: %v", ErrBuildQuery, err)
	}

	h, err := r.scanHoldRow(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrHoldNotExtendable
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Extend - scan hold: %v", ErrScanRow, err)
	}

	return h, nil
}

// Release снимает холд одним условным UPDATE:
//
//	SET status = 'released'
//	WHERE id = ? AND session_id = ? AND status = 'active'
//
// Повторное снятие уже снятого или потребленного холда безвредно
// завершается ErrHoldNotReleasable.
func (r *Repository) Release(ctx context.Context, id, sessionID string) (*domain.Hold, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("holds").
		Set("status", domain.HoldStatusReleased).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"id":         id,
			"session_id": sessionID,
			"status":     domain.HoldStatusActive,
		}).
		Suffix("RETURNING " + holdColumnsList()).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Release - build update query: %v", ErrBuildQuery, err)
	}

	h, err := r.scanHoldRow(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrHoldNotReleasable
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Release - scan hold: %v", ErrScanRow, err)
	}

	return h, nil
}

// Consume помечает холд потребленным со ссылкой на бронирование.
// Терминальный переход, выполняется только из finalize.
func (r *Repository) Consume(ctx context.Context, id string, bookingID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("holds").
		Set("status", domain.HoldStatusConsumed).
		Set("booking_id", bookingID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"id":     id,
			"status": domain.HoldStatusActive,
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Consume - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Consume - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Consume - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrHoldNotConsumable
	}

	return nil
}

// ReleaseExpiredOnSlot снимает истекший активный холд на конкретном слоте.
// Ленивая очистка на пути создания: освобождает частичный уникальный индекс
// от протухшей строки перед вставкой нового холда. Ноль строк - не ошибка.
func (r *Repository) ReleaseExpiredOnSlot(ctx context.Context, boothID string, date time.Time, start, end types.TimeString, now time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("holds").
		Set("status", domain.HoldStatusReleased).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"booth_id":     boothID,
			"booking_date": date,
			"start_time":   start,
			"end_time":     end,
			"status":       domain.HoldStatusActive,
		}).
		Where(squirrel.LtOrEq{"expires_at": now}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ReleaseExpiredOnSlot - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReleaseExpiredOnSlot - execute update: %v", ErrExecQuery, err)
	}

	return nil
}

// ListActiveByVenueDate получает все активные неистекшие холды площадки на дату.
// Используется расчетом доступности: истекшие холды отфильтровываются
// предикатом expires_at > now и слоты не блокируют.
func (r *Repository) ListActiveByVenueDate(ctx context.Context, venue domain.Venue, date time.Time, now time.Time) ([]*domain.Hold, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(holdColumns...).
		From("holds").
		Where(squirrel.Eq{
			"venue":        venue,
			"booking_date": date,
			"status":       domain.HoldStatusActive,
		}).
		Where(squirrel.Gt{"expires_at": now}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByVenueDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByVenueDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanHolds(rows)
}

// ReleaseExpired переводит все истекшие активные холды в released.
// Вызывается фоновой очисткой; корректность от нее не зависит -
// все точки принятия решений и так проверяют expires_at > now.
func (r *Repository) ReleaseExpired(ctx context.Context, now time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("holds").
		Set("status", domain.HoldStatusReleased).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"status": domain.HoldStatusActive}).
		Where(squirrel.LtOrEq{"expires_at": now}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: ReleaseExpired - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: ReleaseExpired - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: ReleaseExpired - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanHoldRow(row rowScanner) (*domain.Hold, error) {
	var h domain.Hold
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&h.ID,
		&h.BoothID,
		&h.Venue,
		&h.BookingDate,
		&h.StartTime,
		&h.EndTime,
		&h.SessionID,
		&h.CustomerEmail,
		&h.Status,
		&h.ExpiresAt,
		&h.BookingID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	h.CreatedAt = createdAt.Time
	h.UpdatedAt = updatedAt.Time

	return &h, nil
}

// scanHolds сканирует результаты запроса в слайс холдов
func (r *Repository) scanHolds(rows *sql.Rows) ([]*domain.Hold, error) {
	holds := make([]*domain.Hold, 0)

	for rows.Next() {
		h, err := r.scanHoldRow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanHolds - scan row: %v", ErrScanRow, err)
		}
		holds = append(holds, h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanHolds - rows error: %v", ErrScanRow, err)
	}

	return holds, nil
}

func holdColumnsList() string {
	list := holdColumns[0]
	for _, c := range holdColumns[1:] {
		list += ", " + c
	}
	return list
}
