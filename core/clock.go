package core

import "time"

// Clock provides the time source for the blocking waits in the
// classifier and actuator. Targets and the host use the system clock;
// tests substitute a virtual one so hold and render timing can be
// verified without wall-clock sleeps.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type systemClock struct{}

func (systemClock) Now() time.Time        { return time.Now() }
func (systemClock) Sleep(d time.Duration) { time.Sleep(d) }

// SystemClock returns the wall clock.
func SystemClock() Clock { return systemClock{} }
