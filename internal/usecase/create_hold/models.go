package create_hold

import (
	"time"

	"github.com/m04kA/KBS-ReservationService/internal/domain"
	"github.com/m04kA/KBS-ReservationService/pkg/types"
)

// Request модель запроса на создание холда
type Request struct {
	BoothID       string           // UUID кабинки
	Venue         domain.Venue     // Площадка (должна совпадать с площадкой кабинки)
	Date          time.Time        // Дата бронирования (без времени)
	StartTime     types.TimeString // Начало окна, например "18:00"
	EndTime       types.TimeString // Конец окна, например "19:00"
	SessionID     string           // Непрозрачный токен сессии клиента
	CustomerEmail *string          // Email клиента (опционально)
	TTLMinutes    *int             // Запрошенный TTL; nil = дефолт, явное значение обрезается до [1,60]
}

// Response модель ответа с созданным холдом
type Response struct {
	ID            string
	BoothID       string
	Venue         domain.Venue
	Date          time.Time
	StartTime     types.TimeString
	EndTime       types.TimeString
	SessionID     string
	CustomerEmail *string
	Status        string
	ExpiresAt     time.Time
	CreatedAt     time.Time
}

func toResponse(h *domain.Hold) *Response {
	return &Response{
		ID:            h.ID,
		BoothID:       h.BoothID,
		Venue:         h.Venue,
		Date:          h.BookingDate,
		StartTime:     h.StartTime,
		EndTime:       h.EndTime,
		SessionID:     h.SessionID,
		CustomerEmail: h.CustomerEmail,
		Status:        string(h.Status),
		ExpiresAt:     h.ExpiresAt,
		CreatedAt:     h.CreatedAt,
	}
}
