package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atolyetakip/workshop/pkg/apperr"
)

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(StatusPending, StatusInProgress))
	assert.True(t, CanTransition(StatusPending, StatusCompleted))
	assert.True(t, CanTransition(StatusInProgress, StatusPending))
	assert.True(t, CanTransition(StatusInProgress, StatusCompleted))

	assert.False(t, CanTransition(StatusCompleted, StatusPending))
	assert.False(t, CanTransition(StatusCompleted, StatusInProgress))
	assert.False(t, CanTransition(StatusPending, StatusPending))
}

func TestStartStopAccumulatesSessions(t *testing.T) {
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	wo := &WorkOrder{ID: 1, Status: StatusPending}

	require.NoError(t, wo.Start(base))
	assert.Equal(t, StatusInProgress, wo.Status)
	require.NotNil(t, wo.ActiveSince)

	require.NoError(t, wo.Stop(base.Add(300*time.Second)))
	assert.Equal(t, StatusPending, wo.Status)
	assert.Nil(t, wo.ActiveSince)
	assert.Equal(t, int64(300), wo.TotalLaborSeconds)

	// second session resumes the running total
	require.NoError(t, wo.Start(base.Add(1000*time.Second)))
	require.NoError(t, wo.Stop(base.Add(1120*time.Second)))
	assert.Equal(t, int64(420), wo.TotalLaborSeconds)
}

func TestStartRequiresPending(t *testing.T) {
	now := time.Now()

	wo := &WorkOrder{ID: 2, Status: StatusPending}
	require.NoError(t, wo.Start(now))

	err := wo.Start(now)
	require.Error(t, err)
	assert.Equal(t, apperr.InvalidTransition, apperr.KindOf(err))
}

func TestStopRequiresInProgress(t *testing.T) {
	wo := &WorkOrder{ID: 3, Status: StatusPending}

	err := wo.Stop(time.Now())
	require.Error(t, err)
	assert.Equal(t, apperr.InvalidTransition, apperr.KindOf(err))
}

func TestStopClampsNegativeSession(t *testing.T) {
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	wo := &WorkOrder{ID: 4, Status: StatusPending}

	require.NoError(t, wo.Start(base))
	// clock went backwards; the session contributes zero, never negative
	require.NoError(t, wo.Stop(base.Add(-30*time.Second)))
	assert.Equal(t, int64(0), wo.TotalLaborSeconds)
}

func TestCompleteFlushesOpenSession(t *testing.T) {
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	// completing mid-session must equal stop followed by complete
	running := &WorkOrder{ID: 5, Status: StatusPending, TotalLaborSeconds: 100}
	require.NoError(t, running.Start(base))
	require.NoError(t, running.Complete(base.Add(60*time.Second)))

	stopped := &WorkOrder{ID: 6, Status: StatusPending, TotalLaborSeconds: 100}
	require.NoError(t, stopped.Start(base))
	require.NoError(t, stopped.Stop(base.Add(60*time.Second)))
	require.NoError(t, stopped.Complete(base.Add(60*time.Second)))

	assert.Equal(t, stopped.TotalLaborSeconds, running.TotalLaborSeconds)
	assert.Equal(t, int64(160), running.TotalLaborSeconds)
	assert.Equal(t, StatusCompleted, running.Status)
	assert.Nil(t, running.ActiveSince)
	require.NotNil(t, running.CompletedAt)
}

func TestCompleteFromPending(t *testing.T) {
	wo := &WorkOrder{ID: 7, Status: StatusPending, TotalLaborSeconds: 50}
	now := time.Now()

	require.NoError(t, wo.Complete(now))
	assert.Equal(t, StatusCompleted, wo.Status)
	assert.Equal(t, int64(50), wo.TotalLaborSeconds)
}

func TestCompleteIsTerminal(t *testing.T) {
	wo := &WorkOrder{ID: 8, Status: StatusPending}
	now := time.Now()

	require.NoError(t, wo.Complete(now))

	err := wo.Complete(now)
	require.Error(t, err)
	assert.Equal(t, apperr.InvalidTransition, apperr.KindOf(err))

	err = wo.Start(now)
	require.Error(t, err)
	assert.Equal(t, apperr.InvalidTransition, apperr.KindOf(err))
}

func TestElapsedSecondsIncludesOpenSession(t *testing.T) {
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	wo := &WorkOrder{ID: 9, Status: StatusPending, TotalLaborSeconds: 300}

	assert.Equal(t, int64(300), wo.ElapsedSeconds(base))

	require.NoError(t, wo.Start(base))
	assert.Equal(t, int64(345), wo.ElapsedSeconds(base.Add(45*time.Second)))

	require.NoError(t, wo.Stop(base.Add(45*time.Second)))
	assert.Equal(t, int64(345), wo.ElapsedSeconds(base.Add(2*time.Hour)))
}
