package booth

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/KBS-ReservationService/internal/domain"
	"github.com/m04kA/KBS-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/KBS-ReservationService/pkg/psqlbuilder"
)

// Repository репозиторий для чтения кабинок.
// Кабинки создаются staff-инструментами, ядро резервирования их только читает.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория кабинок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var boothColumns = []string{
	"id",
	"venue",
	"name",
	"capacity",
	"hourly_rate",
	"open_time",
	"close_time",
	"is_active",
	"created_at",
	"updated_at",
}

// GetByID получает кабинку по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booth, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(boothColumns...).
		From("booths").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var booth domain.Booth
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booth.ID,
		&booth.Venue,
		&booth.Name,
		&booth.Capacity,
		&booth.HourlyRate,
		&booth.OpenTime,
		&booth.CloseTime,
		&booth.IsActive,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBoothNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booth: %v", ErrScanRow, err)
	}

	booth.CreatedAt = createdAt.Time
	booth.UpdatedAt = updatedAt.Time

	return &booth, nil
}

// ListActiveByVenue получает все активные кабинки площадки.
// Отключенные кабинки не участвуют в подборе слотов.
func (r *Repository) ListActiveByVenue(ctx context.Context, venue domain.Venue) ([]*domain.Booth, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(boothColumns...).
		From("booths").
		Where(squirrel.Eq{"venue": venue, "is_active": true}).
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByVenue - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByVenue - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	booths := make([]*domain.Booth, 0)
	for rows.Next() {
		var booth domain.Booth
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&booth.ID,
			&booth.Venue,
			&booth.Name,
			&booth.Capacity,
			&booth.HourlyRate,
			&booth.OpenTime,
			&booth.CloseTime,
			&booth.IsActive,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListActiveByVenue - scan row: %v", ErrScanRow, err)
		}

		booth.CreatedAt = createdAt.Time
		booth.UpdatedAt = updatedAt.Time

		booths = append(booths, &booth)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActiveByVenue - rows error: %v", ErrScanRow, err)
	}

	return booths, nil
}
