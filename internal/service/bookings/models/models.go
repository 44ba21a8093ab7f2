package models

import (
	"time"

	"github.com/m04kA/KBS-ReservationService/internal/domain"
)

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID              int64   `json:"id"`
	CustomerName    string  `json:"customerName"`
	CustomerEmail   *string `json:"customerEmail,omitempty"`
	CustomerPhone   *string `json:"customerPhone,omitempty"`
	BookingType     string  `json:"bookingType"`
	Venue           string  `json:"venue"`
	BoothID         string  `json:"boothId"`
	BookingDate     string  `json:"bookingDate"` // "2026-03-14"
	StartTime       string  `json:"startTime"`   // "18:00"
	EndTime         string  `json:"endTime"`     // "19:00"
	DurationMinutes int     `json:"durationMinutes"`
	GuestCount      *int    `json:"guestCount,omitempty"`
	TotalAmount     float64 `json:"totalAmount"`
	Status          string  `json:"status"`
	PaymentStatus   string  `json:"paymentStatus"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// FromDomainBooking конвертирует domain.Booking в response модель
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:              b.ID,
		CustomerName:    b.CustomerName,
		CustomerEmail:   b.CustomerEmail,
		CustomerPhone:   b.CustomerPhone,
		BookingType:     b.BookingType,
		Venue:           string(b.Venue),
		BoothID:         b.BoothID,
		BookingDate:     b.BookingDate.Format(domain.DateFormat),
		StartTime:       b.StartTime.String(),
		EndTime:         b.EndTime.String(),
		DurationMinutes: b.DurationMinutes,
		GuestCount:      b.GuestCount,
		TotalAmount:     b.TotalAmount,
		Status:          string(b.Status),
		PaymentStatus:   string(b.PaymentStatus),
		CreatedAt:       b.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:       b.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
