package get_availability

import (
	"fmt"

	"github.com/m04kA/KBS-ReservationService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if !req.Venue.IsValid() {
		return fmt.Errorf("%w: unknown venue %q", ErrInvalidInput, req.Venue)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.MinCapacity < 0 {
		return fmt.Errorf("%w: minCapacity must be non-negative", ErrInvalidInput)
	}

	return nil
}

// normalizeGranularity приводит шаг сетки к допустимому диапазону.
// Ноль означает "не задан" и заменяется дефолтом; значения вне
// [15, 240] отклоняются, а не зажимаются - в отличие от TTL холда,
// кривой шаг сетки почти наверняка ошибка клиента.
func normalizeGranularity(minutes int) (int, error) {
	if minutes == 0 {
		return domain.DefaultGranularityMinutes, nil
	}
	if minutes < domain.MinGranularityMinutes || minutes > domain.MaxGranularityMinutes {
		return 0, fmt.Errorf("%w: granularity must be between %d and %d minutes",
			ErrInvalidInput, domain.MinGranularityMinutes, domain.MaxGranularityMinutes)
	}
	return minutes, nil
}
