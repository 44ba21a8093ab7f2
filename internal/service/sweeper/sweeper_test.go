package sweeper

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeLogger struct{}

func (l *fakeLogger) Info(format string, v ...interface{})  {}
func (l *fakeLogger) Error(format string, v ...interface{}) {}

type fakeHoldRepo struct {
	released int64
	err      error

	gotNow time.Time
	calls  int
}

func (r *fakeHoldRepo) ReleaseExpired(ctx context.Context, now time.Time) (int64, error) {
	r.calls++
	r.gotNow = now
	return r.released, r.err
}

type fakeTimeProvider struct {
	now time.Time
}

func (p *fakeTimeProvider) Now() time.Time { return p.now }

func TestSweep_ReleasesExpiredHolds(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	repo := &fakeHoldRepo{released: 3}

	s := New(repo, time.Minute, &fakeLogger{})
	s.timeProvider = &fakeTimeProvider{now: now}

	s.sweep(context.Background())

	assert.Equal(t, 1, repo.calls)
	assert.Equal(t, now, repo.gotNow)
}

func TestSweep_RepositoryErrorDoesNotPanic(t *testing.T) {
	repo := &fakeHoldRepo{err: errors.New("connection lost")}

	s := New(repo, time.Minute, &fakeLogger{})
	s.sweep(context.Background())

	assert.Equal(t, 1, repo.calls)
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	repo := &fakeHoldRepo{}
	s := New(repo, 5*time.Millisecond, &fakeLogger{})

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop after context cancellation")
	}

	assert.Greater(t, repo.calls, 0)
}
