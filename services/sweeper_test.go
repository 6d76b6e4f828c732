package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type removerMock struct{ mock.Mock }

func (m *removerMock) DeleteExpired(ctx context.Context, cutoff time.Time) (int, error) {
	args := m.Called(ctx, cutoff)
	return args.Int(0), args.Error(1)
}

type lockerMock struct{ mock.Mock }

func (m *lockerMock) TryLock(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	args := m.Called(ctx, key, ttl)
	return args.Bool(0), args.Error(1)
}

func fixedNow() time.Time {
	return time.Date(2026, 5, 20, 14, 45, 0, 0, time.Local)
}

func TestSweepOnce_DeletesBeforeStartOfToday(t *testing.T) {
	notes := new(removerMock)
	notes.On("DeleteExpired", mock.Anything, time.Date(2026, 5, 20, 0, 0, 0, 0, time.Local)).Return(2, nil)

	s := NewSuratJalanSweeper(notes, nil, time.Hour)
	s.Now = fixedNow

	n, err := s.SweepOnce(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, n)
	notes.AssertExpectations(t)
}

func TestSweepOnce_SkipsWhenLockHeldElsewhere(t *testing.T) {
	notes := new(removerMock)
	lock := new(lockerMock)
	lock.On("TryLock", mock.Anything, sweepLockKey, time.Hour).Return(false, nil)

	s := NewSuratJalanSweeper(notes, lock, time.Hour)
	s.Now = fixedNow

	n, err := s.SweepOnce(context.Background())

	require.NoError(t, err)
	assert.Zero(t, n)
	notes.AssertNotCalled(t, "DeleteExpired", mock.Anything, mock.Anything)
}

func TestSweepOnce_LockErrorStillSweeps(t *testing.T) {
	notes := new(removerMock)
	notes.On("DeleteExpired", mock.Anything, mock.Anything).Return(0, nil)
	lock := new(lockerMock)
	lock.On("TryLock", mock.Anything, sweepLockKey, time.Hour).Return(false, errors.New("redis down"))

	s := NewSuratJalanSweeper(notes, lock, time.Hour)
	s.Now = fixedNow

	_, err := s.SweepOnce(context.Background())

	require.NoError(t, err)
	notes.AssertExpectations(t)
}

func TestSweepOnce_PropagatesDeleteError(t *testing.T) {
	notes := new(removerMock)
	notes.On("DeleteExpired", mock.Anything, mock.Anything).Return(0, errors.New("deadlock"))

	s := NewSuratJalanSweeper(notes, nil, time.Hour)
	s.Now = fixedNow

	_, err := s.SweepOnce(context.Background())
	assert.EqualError(t, err, "deadlock")
}

func TestRun_StopsOnCancel(t *testing.T) {
	notes := new(removerMock)
	notes.On("DeleteExpired", mock.Anything, mock.Anything).Return(0, nil)

	s := NewSuratJalanSweeper(notes, nil, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("sweeper did not stop")
	}
}
