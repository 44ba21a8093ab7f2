package finalize_booking

import (
	"github.com/m04kA/KBS-ReservationService/internal/domain"
	finalizeBooking "github.com/m04kA/KBS-ReservationService/internal/usecase/finalize_booking"
)

// FinalizeBookingRequest HTTP request model
type FinalizeBookingRequest struct {
	HoldID    string `json:"holdId,omitempty"`
	SessionID string `json:"sessionId,omitempty"`

	CustomerName  string  `json:"customerName"`
	CustomerEmail *string `json:"customerEmail,omitempty"`
	CustomerPhone *string `json:"customerPhone,omitempty"`
	GuestCount    *int    `json:"guestCount,omitempty"`
}

// FinalizeBookingResponse HTTP response model
type FinalizeBookingResponse struct {
	Success         bool    `json:"success"`
	BookingID       int64   `json:"bookingId"`
	HoldID          string  `json:"holdId"`
	BoothID         string  `json:"boothId"`
	Venue           string  `json:"venue"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	DurationMinutes int     `json:"durationMinutes"`
	TotalAmount     float64 `json:"totalAmount"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *FinalizeBookingRequest) ToUseCaseRequest() *finalizeBooking.Request {
	return &finalizeBooking.Request{
		HoldID:        r.HoldID,
		SessionID:     r.SessionID,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		GuestCount:    r.GuestCount,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *finalizeBooking.Response) *FinalizeBookingResponse {
	return &FinalizeBookingResponse{
		Success:         true,
		BookingID:       resp.BookingID,
		HoldID:          resp.HoldID,
		BoothID:         resp.BoothID,
		Venue:           string(resp.Venue),
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.EndTime.String(),
		DurationMinutes: resp.DurationMinutes,
		TotalAmount:     resp.TotalAmount,
	}
}
