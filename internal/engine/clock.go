package engine

import "time"

// Clock supplies the engine's notion of "now".
//
// Streak counting, staleness warnings, and the history seed point are
// all relative to wall-clock time. Injecting the clock keeps the engine
// deterministic under test; production uses SystemClock.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the system wall clock.
type SystemClock struct{}

// Now returns the current local time.
func (SystemClock) Now() time.Time { return time.Now() }
