package sweeper

import (
	"context"
	"time"
)

// HoldRepository интерфейс репозитория холдов
type HoldRepository interface {
	ReleaseExpired(ctx context.Context, now time.Time) (int64, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Sweeper периодически переводит просроченные активные холды в released.
// Все точки чтения фильтруют по expires_at сами, так что свипер не влияет
// на корректность - он только не дает мертвым холдам копиться в статусе
// active.
type Sweeper struct {
	holdRepo     HoldRepository
	interval     time.Duration
	timeProvider TimeProvider
	logger       Logger
}

// New создает новый экземпляр свипера
func New(holdRepo HoldRepository, interval time.Duration, logger Logger) *Sweeper {
	return &Sweeper{
		holdRepo:     holdRepo,
		interval:     interval,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Run запускает цикл свипера до отмены контекста
func (s *Sweeper) Run(ctx context.Context) {
	s.logger.Info("Sweeper: started with interval %s", s.interval)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Sweeper: stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	released, err := s.holdRepo.ReleaseExpired(ctx, s.timeProvider.Now())
	if err != nil {
		s.logger.Error("Sweeper: failed to release expired holds: %v", err)
		return
	}

	if released > 0 {
		s.logger.Info("Sweeper: released %d expired holds", released)
	}
}
