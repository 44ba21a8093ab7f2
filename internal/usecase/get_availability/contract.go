package get_availability

import (
	"context"
	"time"

	"github.com/m04kA/KBS-ReservationService/internal/domain"
)

// BoothRepository интерфейс репозитория кабинок
type BoothRepository interface {
	ListActiveByVenue(ctx context.Context, venue domain.Venue) ([]*domain.Booth, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListConfirmedByVenueDate(ctx context.Context, venue domain.Venue, date time.Time) ([]*domain.Booking, error)
}

// HoldRepository интерфейс репозитория холдов
type HoldRepository interface {
	ListActiveByVenueDate(ctx context.Context, venue domain.Venue, date time.Time, now time.Time) ([]*domain.Hold, error)
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
