package domain

import (
	"time"

	"github.com/atolyetakip/workshop/pkg/apperr"
)

// allowedTransitions configures the state machine as a directed graph.
var allowedTransitions = map[Status][]Status{
	StatusPending:    {StatusInProgress, StatusCompleted},
	StatusInProgress: {StatusPending, StatusCompleted},
	// terminal: no transition out of completed
	StatusCompleted: {},
}

// CanTransition reports whether from -> to is a legal state change.
func CanTransition(from, to Status) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Start opens a labor session. Legal only from pending; no time is
// added yet.
func (w *WorkOrder) Start(now time.Time) error {
	if w.Status != StatusPending {
		return apperr.Newf(apperr.InvalidTransition,
			"cannot start work order %d in status %s", w.ID, w.Status)
	}
	w.Status = StatusInProgress
	t := now
	w.ActiveSince = &t
	return nil
}

// Stop closes the open labor session, adding its duration to the running
// total. The session delta is clamped to >= 0 to tolerate clock skew;
// time is never subtracted.
func (w *WorkOrder) Stop(now time.Time) error {
	if w.Status != StatusInProgress {
		return apperr.Newf(apperr.InvalidTransition,
			"cannot stop work order %d in status %s", w.ID, w.Status)
	}
	w.TotalLaborSeconds += sessionSeconds(*w.ActiveSince, now)
	w.Status = StatusPending
	w.ActiveSince = nil
	return nil
}

// Complete marks the order terminal. An open session is flushed first so
// no labor time is lost. A second Complete fails with InvalidTransition;
// callers must not assume retries are free once the boundary is crossed.
func (w *WorkOrder) Complete(now time.Time) error {
	if w.Status == StatusCompleted {
		return apperr.Newf(apperr.InvalidTransition,
			"work order %d is already completed", w.ID)
	}
	if w.Status == StatusInProgress {
		if err := w.Stop(now); err != nil {
			return err
		}
	}
	w.Status = StatusCompleted
	t := now
	w.CompletedAt = &t
	return nil
}

// ElapsedSeconds returns the accounted labor time plus the open session,
// if any. This is the single source of truth the presentation layer
// renders; clients never sum a local timer into it.
func (w *WorkOrder) ElapsedSeconds(now time.Time) int64 {
	total := w.TotalLaborSeconds
	if w.Status == StatusInProgress && w.ActiveSince != nil {
		total += sessionSeconds(*w.ActiveSince, now)
	}
	return total
}

func sessionSeconds(from, to time.Time) int64 {
	delta := int64(to.Sub(from).Seconds())
	if delta < 0 {
		return 0
	}
	return delta
}
