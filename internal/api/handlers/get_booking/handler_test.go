package get_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/KBS-ReservationService/internal/service/bookings"
	"github.com/m04kA/KBS-ReservationService/internal/service/bookings/models"
)

type mockLogger struct{}

func (l *mockLogger) Info(format string, v ...interface{})  {}
func (l *mockLogger) Warn(format string, v ...interface{})  {}
func (l *mockLogger) Error(format string, v ...interface{}) {}

type mockService struct {
	mock.Mock
}

func (m *mockService) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookingResponse), args.Error(1)
}

func doRequest(t *testing.T, h *Handler, bookingID string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/"+bookingID, nil)
	req = mux.SetURLVars(req, map[string]string{"bookingId": bookingID})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	svc := &mockService{}
	h := NewHandler(svc, &mockLogger{})

	svc.On("GetByID", mock.Anything, int64(42)).Return(&models.BookingResponse{
		ID:           42,
		CustomerName: "Ivan Petrov",
		Venue:        "downtown",
		Status:       "confirmed",
	}, nil)

	rec := doRequest(t, h, "42")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "confirmed", resp.Status)

	svc.AssertExpectations(t)
}

func TestHandle_NotFound(t *testing.T) {
	svc := &mockService{}
	h := NewHandler(svc, &mockLogger{})

	svc.On("GetByID", mock.Anything, int64(7)).Return(nil, bookings.ErrBookingNotFound)

	rec := doRequest(t, h, "7")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_InvalidID(t *testing.T) {
	svc := &mockService{}
	h := NewHandler(svc, &mockLogger{})

	rec := doRequest(t, h, "abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "GetByID")
}
