package hold_actions

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/KBS-ReservationService/internal/domain"
	createHold "github.com/m04kA/KBS-ReservationService/internal/usecase/create_hold"
	extendHold "github.com/m04kA/KBS-ReservationService/internal/usecase/extend_hold"
	releaseHold "github.com/m04kA/KBS-ReservationService/internal/usecase/release_hold"
)

const (
	testHoldID  = "3f8c1a2e-5b6d-4c7e-8f90-123456789abc"
	testBoothID = "9a1b2c3d-4e5f-6071-8293-a4b5c6d7e8f9"
)

type mockLogger struct{}

func (l *mockLogger) Info(format string, v ...interface{})  {}
func (l *mockLogger) Warn(format string, v ...interface{})  {}
func (l *mockLogger) Error(format string, v ...interface{}) {}

type mockCreateUseCase struct {
	mock.Mock
}

func (m *mockCreateUseCase) Execute(ctx context.Context, req *createHold.Request) (*createHold.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*createHold.Response), args.Error(1)
}

type mockExtendUseCase struct {
	mock.Mock
}

func (m *mockExtendUseCase) Execute(ctx context.Context, req *extendHold.Request) (*extendHold.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*extendHold.Response), args.Error(1)
}

type mockReleaseUseCase struct {
	mock.Mock
}

func (m *mockReleaseUseCase) Execute(ctx context.Context, req *releaseHold.Request) (*releaseHold.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*releaseHold.Response), args.Error(1)
}

func newTestHandler() (*Handler, *mockCreateUseCase, *mockExtendUseCase, *mockReleaseUseCase) {
	create := &mockCreateUseCase{}
	extend := &mockExtendUseCase{}
	release := &mockReleaseUseCase{}
	return NewHandler(create, extend, release, &mockLogger{}), create, extend, release
}

func doRequest(t *testing.T, h *Handler, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/holds", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_UnknownAction(t *testing.T) {
	h, create, extend, release := newTestHandler()

	rec := doRequest(t, h, map[string]interface{}{
		"action":    "purchase",
		"sessionId": "sess-1",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	create.AssertNotCalled(t, "Execute")
	extend.AssertNotCalled(t, "Execute")
	release.AssertNotCalled(t, "Execute")
}

func TestHandle_InvalidBody(t *testing.T) {
	h, _, _, _ := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/holds", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_CreateSuccess(t *testing.T) {
	h, create, _, _ := newTestHandler()

	expiresAt := time.Date(2026, 3, 14, 18, 10, 0, 0, time.UTC)
	create.On("Execute", mock.Anything, mock.MatchedBy(func(r *createHold.Request) bool {
		return r.BoothID == testBoothID && r.SessionID == "sess-1" &&
			r.TTLMinutes != nil && *r.TTLMinutes == 15
	})).Return(&createHold.Response{
		ID:        testHoldID,
		BoothID:   testBoothID,
		Venue:     domain.VenueDowntown,
		Date:      time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		StartTime: "18:00",
		EndTime:   "19:00",
		SessionID: "sess-1",
		Status:    string(domain.HoldStatusActive),
		ExpiresAt: expiresAt,
	}, nil)

	rec := doRequest(t, h, map[string]interface{}{
		"action":      "create",
		"boothId":     testBoothID,
		"venue":       "downtown",
		"bookingDate": "2026-03-14",
		"startTime":   "18:00",
		"endTime":     "19:00",
		"sessionId":   "sess-1",
		"ttlMinutes":  15,
	})

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp HoldActionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, testHoldID, resp.Hold.ID)
	assert.Equal(t, "active", resp.Hold.Status)
	require.NotNil(t, resp.Hold.ExpiresAt)
	assert.Equal(t, "2026-03-14T18:10:00Z", *resp.Hold.ExpiresAt)

	create.AssertExpectations(t)
}

func TestHandle_CreateExplicitZeroTTL(t *testing.T) {
	h, create, _, _ := newTestHandler()

	// Присланный ноль доходит до use case как явное значение, а не как
	// отсутствие поля
	create.On("Execute", mock.Anything, mock.MatchedBy(func(r *createHold.Request) bool {
		return r.TTLMinutes != nil && *r.TTLMinutes == 0
	})).Return(&createHold.Response{
		ID:        testHoldID,
		BoothID:   testBoothID,
		Venue:     domain.VenueDowntown,
		Date:      time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		StartTime: "18:00",
		EndTime:   "19:00",
		SessionID: "sess-1",
		Status:    string(domain.HoldStatusActive),
		ExpiresAt: time.Date(2026, 3, 14, 18, 1, 0, 0, time.UTC),
	}, nil)

	rec := doRequest(t, h, map[string]interface{}{
		"action":      "create",
		"boothId":     testBoothID,
		"venue":       "downtown",
		"bookingDate": "2026-03-14",
		"startTime":   "18:00",
		"endTime":     "19:00",
		"sessionId":   "sess-1",
		"ttlMinutes":  0,
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	create.AssertExpectations(t)
}

func TestHandle_CreateSlotConflict(t *testing.T) {
	h, create, _, _ := newTestHandler()

	create.On("Execute", mock.Anything, mock.Anything).Return(nil, createHold.ErrSlotConflict)

	rec := doRequest(t, h, map[string]interface{}{
		"action":      "create",
		"boothId":     testBoothID,
		"venue":       "downtown",
		"bookingDate": "2026-03-14",
		"startTime":   "18:00",
		"endTime":     "19:00",
		"sessionId":   "sess-1",
	})

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandle_CreateInvalidDate(t *testing.T) {
	h, create, _, _ := newTestHandler()

	rec := doRequest(t, h, map[string]interface{}{
		"action":      "create",
		"boothId":     testBoothID,
		"venue":       "downtown",
		"bookingDate": "14.03.2026",
		"startTime":   "18:00",
		"endTime":     "19:00",
		"sessionId":   "sess-1",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	create.AssertNotCalled(t, "Execute")
}

func TestHandle_ExtendSuccess(t *testing.T) {
	h, _, extend, _ := newTestHandler()

	extend.On("Execute", mock.Anything, mock.MatchedBy(func(r *extendHold.Request) bool {
		return r.HoldID == testHoldID && r.SessionID == "sess-1"
	})).Return(&extendHold.Response{
		ID:        testHoldID,
		BoothID:   testBoothID,
		Venue:     domain.VenueDowntown,
		Date:      time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		StartTime: "18:00",
		EndTime:   "19:00",
		SessionID: "sess-1",
		Status:    string(domain.HoldStatusActive),
		ExpiresAt: time.Date(2026, 3, 14, 18, 20, 0, 0, time.UTC),
	}, nil)

	rec := doRequest(t, h, map[string]interface{}{
		"action":     "extend",
		"holdId":     testHoldID,
		"sessionId":  "sess-1",
		"ttlMinutes": 20,
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	extend.AssertExpectations(t)
}

func TestHandle_ExtendNotExtendable(t *testing.T) {
	h, _, extend, _ := newTestHandler()

	extend.On("Execute", mock.Anything, mock.Anything).Return(nil, extendHold.ErrNotExtendable)

	rec := doRequest(t, h, map[string]interface{}{
		"action":    "extend",
		"holdId":    testHoldID,
		"sessionId": "other-session",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_ReleaseSuccess(t *testing.T) {
	h, _, _, release := newTestHandler()

	release.On("Execute", mock.Anything, mock.MatchedBy(func(r *releaseHold.Request) bool {
		return r.HoldID == testHoldID && r.SessionID == "sess-1"
	})).Return(&releaseHold.Response{
		ID:        testHoldID,
		BoothID:   testBoothID,
		Venue:     domain.VenueDowntown,
		Date:      time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		StartTime: "18:00",
		EndTime:   "19:00",
		SessionID: "sess-1",
		Status:    string(domain.HoldStatusReleased),
	}, nil)

	rec := doRequest(t, h, map[string]interface{}{
		"action":    "release",
		"holdId":    testHoldID,
		"sessionId": "sess-1",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp HoldActionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "released", resp.Hold.Status)
	assert.Nil(t, resp.Hold.ExpiresAt)
}

func TestHandle_ReleaseNotReleasable(t *testing.T) {
	h, _, _, release := newTestHandler()

	release.On("Execute", mock.Anything, mock.Anything).Return(nil, releaseHold.ErrNotReleasable)

	rec := doRequest(t, h, map[string]interface{}{
		"action":    "release",
		"holdId":    testHoldID,
		"sessionId": "other-session",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
