package release_hold

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/KBS-ReservationService/internal/domain"
	holdRepo "github.com/m04kA/KBS-ReservationService/internal/infra/storage/hold"
	"github.com/m04kA/KBS-ReservationService/pkg/types"
)

// Request модель запроса на снятие холда
type Request struct {
	HoldID    string // UUID холда
	SessionID string // Сессия-владелец
}

// Response модель ответа со снятым холдом
type Response struct {
	ID        string
	BoothID   string
	Venue     domain.Venue
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	SessionID string
	Status    string
}

// UseCase use case снятия холда
type UseCase struct {
	holdRepo HoldRepository
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(holdRepo HoldRepository, logger Logger) *UseCase {
	return &UseCase{
		holdRepo: holdRepo,
		logger:   logger,
	}
}

// Execute выполняет use case снятия холда.
// Один условный UPDATE с предикатом владения, без предварительного чтения.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ReleaseHold: hold=%s, session=%s", req.HoldID, req.SessionID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ReleaseHold: validation failed: %v", err)
		return nil, err
	}

	h, err := uc.holdRepo.Release(ctx, req.HoldID, req.SessionID)
	if err != nil {
		if errors.Is(err, holdRepo.ErrHoldNotReleasable) {
			uc.logger.Warn("ReleaseHold: hold id=%s is not releasable for session=%s", req.HoldID, req.SessionID)
			return nil, ErrNotReleasable
		}
		uc.logger.Error("ReleaseHold: failed to release hold id=%s: %v", req.HoldID, err)
		return nil, fmt.Errorf("%w: failed to release hold: %v", ErrInternal, err)
	}

	uc.logger.Info("ReleaseHold: successfully released hold id=%s", h.ID)

	return &Response{
		ID:        h.ID,
		BoothID:   h.BoothID,
		Venue:     h.Venue,
		Date:      h.BookingDate,
		StartTime: h.StartTime,
		EndTime:   h.EndTime,
		SessionID: h.SessionID,
		Status:    string(h.Status),
	}, nil
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
