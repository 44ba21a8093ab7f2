package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/KBS-ReservationService/internal/domain"
	bookingRepo "github.com/m04kA/KBS-ReservationService/internal/infra/storage/booking"
)

type fakeLogger struct{}

func (l *fakeLogger) Info(format string, v ...interface{})  {}
func (l *fakeLogger) Warn(format string, v ...interface{})  {}
func (l *fakeLogger) Error(format string, v ...interface{}) {}

type fakeBookingRepo struct {
	booking *domain.Booking
	err     error
}

func (r *fakeBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.booking, nil
}

func TestGetByID_Success(t *testing.T) {
	booking := &domain.Booking{
		ID:              42,
		CustomerName:    "Ivan Petrov",
		BookingType:     domain.BookingTypeKaraoke,
		Venue:           domain.VenueDowntown,
		BoothID:         "9a1b2c3d-4e5f-6071-8293-a4b5c6d7e8f9",
		BookingDate:     time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		StartTime:       "18:00",
		EndTime:         "19:00",
		DurationMinutes: 60,
		TotalAmount:     50,
		Status:          domain.StatusConfirmed,
		PaymentStatus:   domain.PaymentUnpaid,
	}

	svc := NewService(&fakeBookingRepo{booking: booking}, &fakeLogger{})

	resp, err := svc.GetByID(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "2026-03-14", resp.BookingDate)
	assert.Equal(t, "18:00", resp.StartTime)
	assert.Equal(t, "confirmed", resp.Status)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(&fakeBookingRepo{err: bookingRepo.ErrBookingNotFound}, &fakeLogger{})

	_, err := svc.GetByID(context.Background(), 7)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetByID_InvalidID(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, &fakeLogger{})

	_, err := svc.GetByID(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
