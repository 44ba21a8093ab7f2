package booking

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

// Repository репозиторий для работы с бронированиями.
//
// Вставка оптимистичная: никакой предварительной блокировки слота,
// гонку двух finalize разрешает частичный уникальный индекс по
// confirmed-бронированиям, а нарушение транслируется в ErrDuplicateSlot,
// чтобы вызывающая сторона перечитала победителя и приняла его.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var bookingColumns = []string{
	"id",
	"customer_name",
	"customer_email",
	"customer_phone",
	"booking_type",
	"venue",
	"booth_id",
	"booking_date",
	"start_time",
	"end_time",
	"duration_minutes",
	"guest_count",
	"total_amount",
	"status",
	"payment_status",
	"created_at",
	"updated_at",
}

// Create создает новое бронирование.
// Конфликт по частичному уникальному индексу (confirmed-бронирование на тот же
// слот уже существует) возвращается как ErrDuplicateSlot без деталей pq.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"customer_name",
			"customer_email",
			"customer_phone",
			"booking_type",
			"venue",
			"booth_id",
			"booking_date",
			"start_time",
			"end_time",
			"duration_minutes",
			"guest_count",
			"total_amount",
			"status",
			"payment_status",
		).
		Values(
			b.CustomerName,
			b.CustomerEmail,
			b.CustomerPhone,
			b.BookingType,
			b.Venue,
			b.BoothID,
			b.BookingDate,
			b.StartTime,
			b.EndTime,
			b.DurationMinutes,
			b.GuestCount,
			b.TotalAmount,
			b.Status,
			b.PaymentStatus,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == pqUniqueViolation {
			return nil, ErrDuplicateSlot
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	b, err := r.scanBookingRow(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return b, nil
}

// GetConfirmedBySlot получает confirmed-бронирование на конкретный слот.
// Это проба протокола идемпотентности finalize: до вставки и после
// конфликта вставки - обнаруживает дубликат/победителя гонки.
func (r *Repository) GetConfirmedBySlot(ctx context.Context, boothID string, date time.Time, start, end types.TimeString) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{
			"booth_id":     boothID,
			"booking_date": date,
			"start_time":   start,
			"end_time":     end,
			"status":       domain.StatusConfirmed,
		}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetConfirmedBySlot - build select query: %v", ErrBuildQuery, err)
	}

	b, err := r.scanBookingRow(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetConfirmedBySlot - scan booking: %v", ErrScanRow, err)
	}

	return b, nil
}

// ListConfirmedByVenueDate получает все confirmed-бронирования площадки на дату.
// Используется расчетом доступности.
func (r *Repository) ListConfirmedByVenueDate(ctx context.Context, venue domain.Venue, date time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{
			"venue":        venue,
			"booking_date": date,
			"status":       domain.StatusConfirmed,
		}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListConfirmedByVenueDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListConfirmedByVenueDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// ExistsConfirmedOnSlot проверяет, существует ли confirmed-бронирование на слот.
// Используется на пути создания холда: холд на занятый слот не имеет смысла.
func (r *Repository) ExistsConfirmedOnSlot(ctx context.Context, boothID string, date time.Time, start, end types.TimeString) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("bookings").
		Where(squirrel.Eq{
			"booth_id":     boothID,
			"booking_date": date,
			"start_time":   start,
			"end_time":     end,
			"status":       domain.StatusConfirmed,
		}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: ExistsConfirmedOnSlot - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExistsConfirmedOnSlot - scan: %v", ErrScanRow, err)
	}

	return true, nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanBookingRow(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&b.ID,
		&b.CustomerName,
		&b.CustomerEmail,
		&b.CustomerPhone,
		&b.BookingType,
		&b.Venue,
		&b.BoothID,
		&b.BookingDate,
		&b.StartTime,
		&b.EndTime,
		&b.DurationMinutes,
		&b.GuestCount,
		&b.TotalAmount,
		&b.Status,
		&b.PaymentStatus,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		b, err := r.scanBookingRow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
