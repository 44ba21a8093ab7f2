package release_hold

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/KBS-ReservationService/internal/domain"
	holdRepo "github.com/m04kA/KBS-ReservationService/internal/infra/storage/hold"
)

const (
	testHoldID  = "3f8c1a2e-5b6d-4c7e-8f90-123456789abc"
	testSession = "sess-abc"
)

type fakeLogger struct{}

func (l *fakeLogger) Info(format string, v ...interface{})  {}
func (l *fakeLogger) Warn(format string, v ...interface{})  {}
func (l *fakeLogger) Error(format string, v ...interface{}) {}

type fakeHoldRepo struct {
	err error
}

func (r *fakeHoldRepo) Release(ctx context.Context, id, sessionID string) (*domain.Hold, error) {
	if r.err != nil {
		return nil, r.err
	}
	return &domain.Hold{
		ID:        id,
		SessionID: sessionID,
		Status:    domain.HoldStatusReleased,
	}, nil
}

func TestExecute_Success(t *testing.T) {
	uc := NewUseCase(&fakeHoldRepo{}, &fakeLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		HoldID:    testHoldID,
		SessionID: testSession,
	})
	require.NoError(t, err)

	assert.Equal(t, testHoldID, resp.ID)
	assert.Equal(t, string(domain.HoldStatusReleased), resp.Status)
}

func TestExecute_NotReleasable(t *testing.T) {
	uc := NewUseCase(&fakeHoldRepo{err: holdRepo.ErrHoldNotReleasable}, &fakeLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		HoldID:    testHoldID,
		SessionID: "someone-else",
	})
	assert.ErrorIs(t, err, ErrNotReleasable)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := NewUseCase(&fakeHoldRepo{}, &fakeLogger{})

	_, err := uc.Execute(context.Background(), &Request{HoldID: "not-a-uuid", SessionID: testSession})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{HoldID: testHoldID, SessionID: ""})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
