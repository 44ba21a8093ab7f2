package finalize_booking

import (
	"context"
	"time"

	"github.com/m04kA/KBS-ReservationService/internal/domain"
	"github.com/m04kA/KBS-ReservationService/pkg/types"
)

// HoldRepository интерфейс репозитория холдов
type HoldRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Hold, error)
	GetLatestActiveBySession(ctx context.Context, sessionID string, now time.Time) (*domain.Hold, error)
	Consume(ctx context.Context, id string, bookingID int64) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetConfirmedBySlot(ctx context.Context, boothID string, date time.Time, start, end types.TimeString) (*domain.Booking, error)
}

// BoothRepository интерфейс репозитория кабинок
type BoothRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booth, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
