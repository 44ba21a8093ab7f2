package extend_hold

import (
	"time"

	"github.com/m04kA/KBS-ReservationService/internal/domain"
	"github.com/m04kA/KBS-ReservationService/pkg/types"
)

// Request модель запроса на продление холда
type Request struct {
	HoldID     string // UUID холда
	SessionID  string // Сессия-владелец
	TTLMinutes *int   // Запрошенный TTL; nil = дефолт, явное значение обрезается до [1,60]
}

// Response модель ответа с продленным холдом
type Response struct {
	ID        string
	BoothID   string
	Venue     domain.Venue
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	SessionID string
	Status    string
	ExpiresAt time.Time
}

func toResponse(h *domain.Hold) *Response {
	return &Response{
		ID:        h.ID,
		BoothID:   h.BoothID,
		Venue:     h.Venue,
		Date:      h.BookingDate,
		StartTime: h.StartTime,
		EndTime:   h.EndTime,
		SessionID: h.SessionID,
		Status:    string(h.Status),
		ExpiresAt: h.ExpiresAt,
	}
}
