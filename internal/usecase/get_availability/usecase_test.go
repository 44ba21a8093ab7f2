package get_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/KBS-ReservationService/internal/domain"
	"github.com/m04kA/KBS-ReservationService/pkg/types"
)

const (
	boothSmallID = "11111111-1111-1111-1111-111111111111"
	boothBigID   = "22222222-2222-2222-2222-222222222222"
)

var (
	testNow  = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	testDate = time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
)

type fakeTimeProvider struct {
	now time.Time
}

func (p *fakeTimeProvider) Now() time.Time { return p.now }

type fakeLogger struct{}

func (l *fakeLogger) Info(format string, v ...interface{})  {}
func (l *fakeLogger) Warn(format string, v ...interface{})  {}
func (l *fakeLogger) Error(format string, v ...interface{}) {}

type fakeBoothRepo struct {
	booths []*domain.Booth
}

func (r *fakeBoothRepo) ListActiveByVenue(ctx context.Context, venue domain.Venue) ([]*domain.Booth, error) {
	return r.booths, nil
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (r *fakeBookingRepo) ListConfirmedByVenueDate(ctx context.Context, venue domain.Venue, date time.Time) ([]*domain.Booking, error) {
	return r.bookings, nil
}

type fakeHoldRepo struct {
	holds []*domain.Hold
}

func (r *fakeHoldRepo) ListActiveByVenueDate(ctx context.Context, venue domain.Venue, date time.Time, now time.Time) ([]*domain.Hold, error) {
	return r.holds, nil
}

func testBooths() []*domain.Booth {
	return []*domain.Booth{
		{
			ID: boothSmallID, Venue: domain.VenueDowntown, Name: "Booth A",
			Capacity: 4, HourlyRate: 40, OpenTime: "10:00", CloseTime: "22:00", IsActive: true,
		},
		{
			ID: boothBigID, Venue: domain.VenueDowntown, Name: "Booth B",
			Capacity: 10, HourlyRate: 80, OpenTime: "12:00", CloseTime: "23:00", IsActive: true,
		},
	}
}

func newTestUseCase(booths []*domain.Booth, bookings []*domain.Booking, holds []*domain.Hold) *UseCase {
	uc := NewUseCase(&fakeBoothRepo{booths: booths}, &fakeBookingRepo{bookings: bookings}, &fakeHoldRepo{holds: holds}, &fakeLogger{})
	uc.timeProvider = &fakeTimeProvider{now: testNow}
	return uc
}

func validRequest() *Request {
	return &Request{
		Venue: domain.VenueDowntown,
		Date:  testDate,
	}
}

func findWindow(t *testing.T, windows []domain.SlotWindow, start types.TimeString) *domain.SlotWindow {
	t.Helper()
	for i := range windows {
		if windows[i].StartTime == start {
			return &windows[i]
		}
	}
	t.Fatalf("window starting at %s not found", start)
	return nil
}

func boothIDs(options []domain.BoothOption) []string {
	ids := make([]string, len(options))
	for i, o := range options {
		ids[i] = o.BoothID
	}
	return ids
}

func TestExecute_GridCoversAllOperatingHours(t *testing.T) {
	uc := newTestUseCase(testBooths(), nil, nil)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultGranularityMinutes, resp.GranularityMinutes)
	// Сетка от самого раннего открытия (10:00) до самого позднего закрытия (23:00)
	require.Len(t, resp.Windows, 13)
	assert.Equal(t, types.TimeString("10:00"), resp.Windows[0].StartTime)
	assert.Equal(t, types.TimeString("22:00"), resp.Windows[12].StartTime)

	// 10:00-11:00 только Booth A: Booth B еще закрыта
	w := findWindow(t, resp.Windows, "10:00")
	assert.Equal(t, []string{boothSmallID}, boothIDs(w.AvailableBooths))

	// 22:00-23:00 только Booth B: Booth A уже закрыта
	w = findWindow(t, resp.Windows, "22:00")
	assert.Equal(t, []string{boothBigID}, boothIDs(w.AvailableBooths))

	// Днем обе кабинки свободны
	w = findWindow(t, resp.Windows, "14:00")
	assert.Len(t, w.AvailableBooths, 2)
	assert.True(t, w.IsAvailable())
}

func TestExecute_ConfirmedBookingBlocksSlot(t *testing.T) {
	bookings := []*domain.Booking{
		{
			BoothID: boothSmallID, Venue: domain.VenueDowntown, BookingDate: testDate,
			StartTime: "18:00", EndTime: "19:00", Status: domain.StatusConfirmed,
		},
	}
	uc := newTestUseCase(testBooths(), bookings, nil)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	w := findWindow(t, resp.Windows, "18:00")
	assert.Equal(t, []string{boothBigID}, boothIDs(w.AvailableBooths))

	// Соседние окна не затронуты (интервалы полуоткрытые)
	w = findWindow(t, resp.Windows, "17:00")
	assert.Len(t, w.AvailableBooths, 2)
	w = findWindow(t, resp.Windows, "19:00")
	assert.Len(t, w.AvailableBooths, 2)
}

func TestExecute_ActiveHoldBlocksSlot(t *testing.T) {
	holds := []*domain.Hold{
		{
			BoothID: boothBigID, Venue: domain.VenueDowntown, BookingDate: testDate,
			StartTime: "20:00", EndTime: "21:00",
			Status: domain.HoldStatusActive, ExpiresAt: testNow.Add(10 * time.Minute),
		},
	}
	uc := newTestUseCase(testBooths(), nil, holds)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	w := findWindow(t, resp.Windows, "20:00")
	assert.Equal(t, []string{boothSmallID}, boothIDs(w.AvailableBooths))
}

func TestExecute_ExpiredHoldDoesNotBlock(t *testing.T) {
	// Статус в БД еще active, но expires_at в прошлом - свипер мог не успеть
	holds := []*domain.Hold{
		{
			BoothID: boothBigID, Venue: domain.VenueDowntown, BookingDate: testDate,
			StartTime: "20:00", EndTime: "21:00",
			Status: domain.HoldStatusActive, ExpiresAt: testNow.Add(-time.Minute),
		},
	}
	uc := newTestUseCase(testBooths(), nil, holds)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	w := findWindow(t, resp.Windows, "20:00")
	assert.Len(t, w.AvailableBooths, 2)
}

func TestExecute_FullyBookedWindowStaysInOutput(t *testing.T) {
	bookings := []*domain.Booking{
		{BoothID: boothSmallID, BookingDate: testDate, StartTime: "14:00", EndTime: "15:00", Status: domain.StatusConfirmed},
		{BoothID: boothBigID, BookingDate: testDate, StartTime: "14:00", EndTime: "15:00", Status: domain.StatusConfirmed},
	}
	uc := newTestUseCase(testBooths(), bookings, nil)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	w := findWindow(t, resp.Windows, "14:00")
	assert.False(t, w.IsAvailable())
	assert.Empty(t, w.AvailableBooths)
}

func TestExecute_MinCapacityFilter(t *testing.T) {
	uc := newTestUseCase(testBooths(), nil, nil)

	req := validRequest()
	req.MinCapacity = 6

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// Booth A (4 места) свободна, но мала - попадает в too-small
	w := findWindow(t, resp.Windows, "14:00")
	assert.Equal(t, []string{boothBigID}, boothIDs(w.AvailableBooths))
	assert.Equal(t, []string{boothSmallID}, boothIDs(w.TooSmallBooths))
}

func TestExecute_CustomGranularity(t *testing.T) {
	uc := newTestUseCase(testBooths(), nil, nil)

	req := validRequest()
	req.GranularityMinutes = 30

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 30, resp.GranularityMinutes)
	// 10:00-23:00 с шагом 30 минут
	assert.Len(t, resp.Windows, 26)
	assert.Equal(t, types.TimeString("10:30"), resp.Windows[1].StartTime)
}

func TestExecute_GranularityOutOfRange(t *testing.T) {
	uc := newTestUseCase(testBooths(), nil, nil)

	for _, granularity := range []int{5, 14, 241, -60} {
		req := validRequest()
		req.GranularityMinutes = granularity

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput, "granularity %d", granularity)
	}
}

func TestExecute_NoBooths(t *testing.T) {
	uc := newTestUseCase(nil, nil, nil)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Empty(t, resp.Windows)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := newTestUseCase(testBooths(), nil, nil)

	_, err := uc.Execute(context.Background(), &Request{Venue: "space-station", Date: testDate})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Venue: domain.VenueDowntown})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Venue: domain.VenueDowntown, Date: testDate, MinCapacity: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
