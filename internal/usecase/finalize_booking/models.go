package finalize_booking

import (
	"time"

	"github.com/m04kA/KBS-ReservationService/internal/domain"
	"github.com/m04kA/KBS-ReservationService/pkg/types"
)

// Request модель запроса на финализацию холда в бронирование.
// Ровно один из HoldID / SessionID должен быть задан: либо прямая ссылка
// на холд, либо поиск самого свежего активного холда сессии.
type Request struct {
	HoldID    string // UUID холда (опционально)
	SessionID string // Токен сессии (опционально)

	CustomerName  string
	CustomerEmail *string
	CustomerPhone *string
	GuestCount    *int
}

// Response модель ответа финализации
type Response struct {
	BookingID int64

	// Created=true - создано новое бронирование (HTTP 201);
	// false - принято уже существующее после ретрая или проигранной гонки (HTTP 200)
	Created bool

	HoldID          string
	BoothID         string
	Venue           domain.Venue
	Date            time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int
	TotalAmount     float64
}
