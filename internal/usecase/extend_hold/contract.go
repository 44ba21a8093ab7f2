package extend_hold

import (
	"context"
	"time"

	"github.com/m04kA/KBS-ReservationService/internal/domain"
)

// HoldRepository интерфейс репозитория холдов
type HoldRepository interface {
	Extend(ctx context.Context, id, sessionID string, newExpiresAt, now time.Time) (*domain.Hold, error)
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
