package core

import (
	"testing"
	"time"
)

func TestCoarseClock(t *testing.T) {
	clock := CoarseClock()
	// Allow the ticker to fire at least once
	time.Sleep(2 * time.Millisecond)

	got := clock()
	now := time.Now()

	diff := now.Sub(got)
	if diff < 0 {
		diff = -diff
	}

	// The cached time should be within 5ms of real time
	if diff > 5*time.Millisecond {
		t.Errorf("CoarseClock() drifted %v from time.Now()", diff)
	}
}

func TestCoarseClockIdempotent(t *testing.T) {
	// Asking for the clock repeatedly must not panic or restart anything
	CoarseClock()
	CoarseClock()

	got := CoarseClock()()
	if got.IsZero() {
		t.Error("CoarseClock() returned zero time after repeated calls")
	}
}
