package extend_hold

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/KBS-ReservationService/internal/domain"
	holdRepo "github.com/m04kA/KBS-ReservationService/internal/infra/storage/hold"
	"github.com/m04kA/KBS-ReservationService/pkg/ptr"
)

const (
	testHoldID  = "3f8c1a2e-5b6d-4c7e-8f90-123456789abc"
	testSession = "sess-abc"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

type fakeTimeProvider struct {
	now time.Time
}

func (p *fakeTimeProvider) Now() time.Time { return p.now }

type fakeLogger struct{}

func (l *fakeLogger) Info(format string, v ...interface{})  {}
func (l *fakeLogger) Warn(format string, v ...interface{})  {}
func (l *fakeLogger) Error(format string, v ...interface{}) {}

type fakeHoldRepo struct {
	err error

	gotID        string
	gotSession   string
	gotExpiresAt time.Time
}

func (r *fakeHoldRepo) Extend(ctx context.Context, id, sessionID string, newExpiresAt, now time.Time) (*domain.Hold, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.gotID = id
	r.gotSession = sessionID
	r.gotExpiresAt = newExpiresAt
	return &domain.Hold{
		ID:        id,
		SessionID: sessionID,
		Status:    domain.HoldStatusActive,
		ExpiresAt: newExpiresAt,
	}, nil
}

func newTestUseCase(repo *fakeHoldRepo) *UseCase {
	uc := NewUseCase(repo, &fakeLogger{})
	uc.timeProvider = &fakeTimeProvider{now: testNow}
	return uc
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeHoldRepo{}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		HoldID:     testHoldID,
		SessionID:  testSession,
		TTLMinutes: ptr.Ptr(15),
	})
	require.NoError(t, err)

	assert.Equal(t, testHoldID, resp.ID)
	assert.Equal(t, testNow.Add(15*time.Minute), resp.ExpiresAt)
	assert.Equal(t, testSession, repo.gotSession)
}

func TestExecute_TTLClamp(t *testing.T) {
	tests := []struct {
		name     string
		ttl      *int
		expected time.Duration
	}{
		{"nil uses default", nil, 10 * time.Minute},
		{"explicit zero clamps to 1 minute", ptr.Ptr(0), time.Minute},
		{"above maximum clamps to 60 minutes", ptr.Ptr(999), 60 * time.Minute},
		{"below minimum clamps to 1 minute", ptr.Ptr(-1), time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeHoldRepo{}
			uc := newTestUseCase(repo)

			_, err := uc.Execute(context.Background(), &Request{
				HoldID:     testHoldID,
				SessionID:  testSession,
				TTLMinutes: tt.ttl,
			})
			require.NoError(t, err)
			assert.Equal(t, testNow.Add(tt.expected), repo.gotExpiresAt)
		})
	}
}

func TestExecute_NotExtendable(t *testing.T) {
	// Чужая сессия, истекший или терминальный холд - репозиторий различий
	// не делает, условный UPDATE просто не находит строку
	uc := newTestUseCase(&fakeHoldRepo{err: holdRepo.ErrHoldNotExtendable})

	_, err := uc.Execute(context.Background(), &Request{
		HoldID:    testHoldID,
		SessionID: "someone-else",
	})
	assert.ErrorIs(t, err, ErrNotExtendable)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := newTestUseCase(&fakeHoldRepo{})

	_, err := uc.Execute(context.Background(), &Request{HoldID: "not-a-uuid", SessionID: testSession})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{HoldID: testHoldID, SessionID: ""})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
