package finalize_booking

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/KBS-ReservationService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	hasHoldID := req.HoldID != ""
	hasSessionID := req.SessionID != ""

	if hasHoldID == hasSessionID {
		return fmt.Errorf("%w: exactly one of holdId or sessionId must be provided", ErrInvalidInput)
	}

	if hasHoldID {
		if _, err := uuid.Parse(req.HoldID); err != nil {
			return fmt.Errorf("%w: holdId must be a valid UUID", ErrInvalidInput)
		}
	}

	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}

	if req.GuestCount != nil && *req.GuestCount <= 0 {
		return fmt.Errorf("%w: guestCount must be positive", ErrInvalidInput)
	}

	return nil
}

// durationMinutes вычисляет длительность окна в минутах.
// end < start не ожидается и обрезается до нуля, а не превращается в ошибку.
func durationMinutes(start, end types.TimeString) (int, error) {
	startMin, err := start.Minutes()
	if err != nil {
		return 0, err
	}
	endMin, err := end.Minutes()
	if err != nil {
		return 0, err
	}

	d := endMin - startMin
	if d < 0 {
		d = 0
	}
	return d, nil
}
