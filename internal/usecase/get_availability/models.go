package get_availability

import (
	"time"

	"github.com/m04kA/KBS-ReservationService/internal/domain"
)

// Request модель запроса доступности площадки на дату
type Request struct {
	Venue              domain.Venue
	Date               time.Time
	GranularityMinutes int // Шаг окон; 0 = дефолт (60), допустимо [15, 240]
	MinCapacity        int // Минимальная вместимость; 0 = без фильтра
}

// Response модель ответа с окнами доступности
type Response struct {
	Venue              domain.Venue
	Date               time.Time
	GranularityMinutes int
	Windows            []domain.SlotWindow
}
