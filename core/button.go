package core

import (
	"time"

	"github.com/jayfourjavier/HC12-MORSE-CODE-TRANSCIEVER/protocol"
)

// Classifier samples the push-button once per session tick and turns
// a complete press/release cycle into a symbol by hold duration.
type Classifier struct {
	button   Button
	actuator *Actuator
	timing   TimingProfile
	clock    Clock
}

// NewClassifier wires a classifier to its button and the actuator
// used for the dash-warning beep.
func NewClassifier(button Button, actuator *Actuator, timing TimingProfile, clock Clock) *Classifier {
	return &Classifier{button: button, actuator: actuator, timing: timing, clock: clock}
}

// Poll samples the button. If it is not pressed, Poll returns
// SymbolNone immediately. While it is held, Poll blocks until
// release, firing the dash-warning beep exactly once the first
// instant the hold exceeds the dot hold threshold. After release it
// waits out the debounce delay and classifies the hold.
//
// The hold wait is bounded only by the operator's finger; it is not
// cancellable from outside.
func (c *Classifier) Poll() protocol.Symbol {
	if !c.button.Pressed() {
		return protocol.SymbolNone
	}

	start := c.clock.Now()
	warned := false // one-shot per hold cycle
	for c.button.Pressed() {
		if !warned && c.clock.Now().Sub(start) > c.timing.DotHold {
			c.actuator.WarnBeep()
			warned = true
		}
		c.clock.Sleep(c.timing.Poll)
	}
	held := c.clock.Now().Sub(start)

	c.clock.Sleep(c.timing.Debounce)
	return ClassifyHold(held, c.timing)
}

// ClassifyHold maps a finalized hold duration onto a symbol. The
// partition is total and non-overlapping: at or below the minimum
// press threshold is a spurious press, between the thresholds is a
// dot, beyond the dot hold is a dash.
func ClassifyHold(held time.Duration, t TimingProfile) protocol.Symbol {
	switch {
	case held <= t.MinPress:
		return protocol.SymbolNone
	case held <= t.DotHold:
		return protocol.SymbolDot
	default:
		return protocol.SymbolDash
	}
}
