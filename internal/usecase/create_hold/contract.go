package create_hold

import (
	"context"
	"time"

	"github.com/m04kA/KBS-ReservationService/internal/domain"
	"github.com/m04kA/KBS-ReservationService/pkg/types"
)

// HoldRepository интерфейс репозитория холдов
type HoldRepository interface {
	Create(ctx context.Context, h *domain.Hold) (*domain.Hold, error)
	ReleaseExpiredOnSlot(ctx context.Context, boothID string, date time.Time, start, end types.TimeString, now time.Time) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ExistsConfirmedOnSlot(ctx context.Context, boothID string, date time.Time, start, end types.TimeString) (bool, error)
}

// BoothRepository интерфейс репозитория кабинок
type BoothRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booth, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
