package extend_hold

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/KBS-ReservationService/internal/domain"
	holdRepo "github.com/m04kA/KBS-ReservationService/internal/infra/storage/hold"
)

// UseCase use case продления холда
type UseCase struct {
	holdRepo     HoldRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(holdRepo HoldRepository, logger Logger) *UseCase {
	return &UseCase{
		holdRepo:     holdRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case продления холда.
// Вся защита от гонок - один условный UPDATE в репозитории с предикатом
// владения и состояния; usecase не делает предварительного чтения.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// TTL нормализуется молча: nil - дефолт, явное значение обрезается до [1, 60]
	ttlMinutes := domain.ResolveTTLMinutes(req.TTLMinutes)

	uc.logger.Info("ExtendHold: hold=%s, session=%s, ttl=%d", req.HoldID, req.SessionID, ttlMinutes)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ExtendHold: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	newExpiresAt := now.Add(time.Duration(ttlMinutes) * time.Minute)

	h, err := uc.holdRepo.Extend(ctx, req.HoldID, req.SessionID, newExpiresAt, now)
	if err != nil {
		if errors.Is(err, holdRepo.ErrHoldNotExtendable) {
			uc.logger.Warn("ExtendHold: hold id=%s is not extendable for session=%s", req.HoldID, req.SessionID)
			return nil, ErrNotExtendable
		}
		uc.logger.Error("ExtendHold: failed to extend hold id=%s: %v", req.HoldID, err)
		return nil, fmt.Errorf("%w: failed to extend hold: %v", ErrInternal, err)
	}

	uc.logger.Info("ExtendHold: successfully extended hold id=%s until %s",
		h.ID, h.ExpiresAt.Format(time.RFC3339))

	return toResponse(h), nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if _, err := uuid.Parse(req.HoldID); err != nil {
		return fmt.Errorf("%w: holdId must be a valid UUID", ErrInvalidInput)
	}
	if req.SessionID == "" {
		return fmt.Errorf("%w: sessionId is required", ErrInvalidInput)
	}
	return nil
}
