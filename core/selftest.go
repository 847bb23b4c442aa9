package core

import (
	"context"
	"time"
)

// SelfTest is the wiring-verification jig. While the button is held
// it toggles LED and buzzer together at a fixed interval, so a silent
// buzzer or dark LED points straight at the faulty leg. It replaces
// the normal session while enabled; the two never run together.
type SelfTest struct {
	Button Button
	LED    Signaler
	Buzzer Signaler
	Clock  Clock

	// Toggle is the on/off phase length. Zero means the reference
	// 500ms.
	Toggle time.Duration
}

// Run mirrors the button until the context is cancelled.
func (j *SelfTest) Run(ctx context.Context) error {
	toggle := j.Toggle
	if toggle == 0 {
		toggle = 500 * time.Millisecond
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if !j.Button.Pressed() {
			j.Clock.Sleep(time.Millisecond)
			continue
		}
		for j.Button.Pressed() && ctx.Err() == nil {
			j.LED.Set(true)
			j.Buzzer.Set(true)
			j.Clock.Sleep(toggle)
			j.LED.Set(false)
			j.Buzzer.Set(false)
			j.Clock.Sleep(toggle)
		}
		// Both outputs must end low regardless of where the release
		// landed in the toggle cycle.
		j.LED.Set(false)
		j.Buzzer.Set(false)
	}
}
