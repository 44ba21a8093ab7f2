package domain

import (
	"time"

	"github.com/m04kA/KBS-ReservationService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// PaymentStatus represents the payment state of a booking
type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "unpaid"
	PaymentPaid   PaymentStatus = "paid"
)

// Booking подтвержденное бронирование кабинки.
// Ядро резервирования создает бронирования только через finalize
// и только со status=confirmed.
//
// Инвариант БД: не более одного бронирования со status=confirmed на кортеж
// (booth_id, booking_date, start_time, end_time) - частичный уникальный индекс.
type Booking struct {
	ID int64

	CustomerName  string
	CustomerEmail *string
	CustomerPhone *string

	// Ядро резервирования работает только с karaoke_booking
	BookingType string

	Venue   Venue
	BoothID string // UUID кабинки

	BookingDate     time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int // производное: minutes(end) - minutes(start), >= 0

	GuestCount *int

	// hourly rate кабинки * (duration / 60)
	TotalAmount float64

	Status        BookingStatus
	PaymentStatus PaymentStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsConfirmed returns true if the booking is confirmed
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// BlocksSlot возвращает true, если бронирование занимает свой слот
// (учитывается при расчете доступности)
func (b *Booking) BlocksSlot() bool {
	return b.Status == StatusConfirmed
}
