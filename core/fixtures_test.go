package core

import (
	"time"

	"github.com/jayfourjavier/HC12-MORSE-CODE-TRANSCIEVER/protocol"
)

// fakeClock advances only when something sleeps, which makes every
// hold and render duration exact and test runs instant.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Unix(0, 0)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Sleep(d time.Duration) { c.now = c.now.Add(d) }

func (c *fakeClock) elapsed() time.Duration { return c.now.Sub(time.Unix(0, 0)) }

// holdButton reads as pressed until the fake clock passes its release
// time.
type holdButton struct {
	clock *fakeClock
	until time.Time
	polls int
}

// pressFor scripts a button held for d starting now.
func pressFor(clock *fakeClock, d time.Duration) *holdButton {
	return &holdButton{clock: clock, until: clock.now.Add(d)}
}

// idleButton is never pressed.
func idleButton(clock *fakeClock) *holdButton {
	return &holdButton{clock: clock, until: clock.now}
}

func (b *holdButton) Pressed() bool {
	b.polls++
	return b.clock.now.Before(b.until)
}

// signalEvent records one output transition and when it happened.
type signalEvent struct {
	on bool
	at time.Time
}

// recorder captures every Set call with a timestamp.
type recorder struct {
	clock  *fakeClock
	events []signalEvent
}

func (r *recorder) Set(on bool) {
	r.events = append(r.events, signalEvent{on: on, at: r.clock.now})
}

// onCount returns how many off-to-on transitions were recorded.
func (r *recorder) onCount() int {
	n := 0
	for _, e := range r.events {
		if e.on {
			n++
		}
	}
	return n
}

// endsLow reports whether the last recorded transition was off.
func (r *recorder) endsLow() bool {
	if len(r.events) == 0 {
		return true
	}
	return !r.events[len(r.events)-1].on
}

// rig bundles a fully wired actuator with its recorders.
type rig struct {
	clock  *fakeClock
	led    *recorder
	buzzer *recorder
	act    *Actuator
	timing TimingProfile
}

func newRig() *rig {
	clock := newFakeClock()
	led := &recorder{clock: clock}
	buzzer := &recorder{clock: clock}
	timing := DefaultTimingProfile()
	return &rig{
		clock:  clock,
		led:    led,
		buzzer: buzzer,
		act:    NewActuator(led, buzzer, timing, clock),
		timing: timing,
	}
}

// stubLink is a scriptable LineTransport that records transmissions.
type stubLink struct {
	inbound []string
	wrote   []string
}

func (l *stubLink) Available() bool { return len(l.inbound) > 0 }

func (l *stubLink) ReadLine() (string, error) {
	if len(l.inbound) == 0 {
		return "", nil
	}
	line := l.inbound[0]
	l.inbound = l.inbound[1:]
	return line, nil
}

func (l *stubLink) WriteLine(s string) error {
	l.wrote = append(l.wrote, s)
	return nil
}

var _ protocol.LineTransport = (*stubLink)(nil)
