package core

import (
	"fmt"
	"time"
)

// TimingProfile holds every duration the classifier and actuator work
// from. It is constructed once at startup and never mutated; the
// classifier reads the press thresholds, the actuator reads the
// render durations.
type TimingProfile struct {
	// DotDuration is how long LED and buzzer stay on for a dot.
	DotDuration time.Duration

	// DashDuration is how long LED and buzzer stay on for a dash.
	// Must be longer than DotDuration.
	DashDuration time.Duration

	// SymbolGap is the forced off-time after every rendered symbol.
	SymbolGap time.Duration

	// MinPress is the spurious-press cutoff: holds at or below it
	// classify as no symbol.
	MinPress time.Duration

	// DotHold is the upper bound of a dot hold. Anything longer is a
	// dash, and the operator warn beep fires the moment a hold first
	// crosses it.
	DotHold time.Duration

	// WarnBeep is the length of the one-shot dash-warning beep.
	WarnBeep time.Duration

	// Debounce is the settle delay applied after button release
	// before the hold is classified.
	Debounce time.Duration

	// Poll is the pacing interval for the hold loop and for idle
	// session ticks.
	Poll time.Duration
}

// DefaultTimingProfile returns the reference device constants.
func DefaultTimingProfile() TimingProfile {
	return TimingProfile{
		DotDuration:  200 * time.Millisecond,
		DashDuration: 600 * time.Millisecond,
		SymbolGap:    time.Second,
		MinPress:     100 * time.Millisecond,
		DotHold:      time.Second,
		WarnBeep:     100 * time.Millisecond,
		Debounce:     50 * time.Millisecond,
		Poll:         time.Millisecond,
	}
}

// Validate checks the profile invariants.
func (t TimingProfile) Validate() error {
	type field struct {
		name string
		d    time.Duration
	}
	for _, f := range []field{
		{"dot duration", t.DotDuration},
		{"dash duration", t.DashDuration},
		{"symbol gap", t.SymbolGap},
		{"min press", t.MinPress},
		{"dot hold", t.DotHold},
		{"warn beep", t.WarnBeep},
		{"debounce", t.Debounce},
		{"poll", t.Poll},
	} {
		if f.d <= 0 {
			return fmt.Errorf("timing: %s must be positive, got %v", f.name, f.d)
		}
	}
	if t.DotDuration >= t.DashDuration {
		return fmt.Errorf("timing: dot duration %v must be shorter than dash duration %v",
			t.DotDuration, t.DashDuration)
	}
	if t.MinPress >= t.DotHold {
		return fmt.Errorf("timing: min press %v must be shorter than dot hold %v",
			t.MinPress, t.DotHold)
	}
	return nil
}
