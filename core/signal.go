package core

import (
	"time"

	"github.com/jayfourjavier/HC12-MORSE-CODE-TRANSCIEVER/protocol"
)

// Actuator drives the LED and buzzer pair. Every pattern is
// synchronous and blocking for its full duration: the device has
// nothing else useful to do mid-signal, and the blocking call is what
// guarantees no second render starts before the first completes.
type Actuator struct {
	led    Signaler
	buzzer Signaler
	timing TimingProfile
	clock  Clock
}

// NewActuator wires an actuator to its outputs.
func NewActuator(led, buzzer Signaler, timing TimingProfile, clock Clock) *Actuator {
	return &Actuator{led: led, buzzer: buzzer, timing: timing, clock: clock}
}

// Render blinks and beeps one symbol: LED and buzzer on for the
// symbol duration, then both off for the symbol gap. SymbolNone is a
// no-op, which is how malformed inbound frames stay invisible.
func (a *Actuator) Render(sym protocol.Symbol) {
	var on time.Duration
	switch sym {
	case protocol.SymbolDot:
		on = a.timing.DotDuration
	case protocol.SymbolDash:
		on = a.timing.DashDuration
	default:
		return
	}

	a.led.Set(true)
	a.buzzer.Set(true)
	a.clock.Sleep(on)
	a.led.Set(false)
	a.buzzer.Set(false)
	a.clock.Sleep(a.timing.SymbolGap)
}

// WarnBeep fires the short buzzer-only beep telling the operator the
// current hold has crossed into dash territory.
func (a *Actuator) WarnBeep() {
	a.buzzer.Set(true)
	a.clock.Sleep(a.timing.WarnBeep)
	a.buzzer.Set(false)
}

// Beep cycles the buzzer on and off the given number of times, each
// phase lasting d.
func (a *Actuator) Beep(times int, d time.Duration) {
	for i := 0; i < times; i++ {
		a.buzzer.Set(true)
		a.clock.Sleep(d)
		a.buzzer.Set(false)
		a.clock.Sleep(d)
	}
}

// SignalReady is the fast startup pattern: the radio handshake
// succeeded.
func (a *Actuator) SignalReady() {
	a.Beep(5, 150*time.Millisecond)
}

// SignalFailure is the slow startup pattern: the radio did not
// acknowledge and the device continues degraded.
func (a *Actuator) SignalFailure() {
	a.Beep(5, 500*time.Millisecond)
}

// AllOff forces both outputs low.
func (a *Actuator) AllOff() {
	a.led.Set(false)
	a.buzzer.Set(false)
}
