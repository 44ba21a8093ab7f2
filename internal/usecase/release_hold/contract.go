package release_hold

import (
	"context"

	"github.com/m04kA/KBS-ReservationService/internal/domain"
)

// HoldRepository интерфейс репозитория холдов
type HoldRepository interface {
	Release(ctx context.Context, id, sessionID string) (*domain.Hold, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
