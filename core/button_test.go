package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jayfourjavier/HC12-MORSE-CODE-TRANSCIEVER/protocol"
)

// The hold partition is total and non-overlapping around the two
// thresholds (min press 100ms, dot hold 1000ms).
func TestClassifyHoldPartition(t *testing.T) {
	timing := DefaultTimingProfile()
	cases := []struct {
		held time.Duration
		want protocol.Symbol
	}{
		{0, protocol.SymbolNone},
		{50 * time.Millisecond, protocol.SymbolNone},
		{100 * time.Millisecond, protocol.SymbolNone}, // boundary: still spurious
		{101 * time.Millisecond, protocol.SymbolDot},
		{300 * time.Millisecond, protocol.SymbolDot},
		{time.Second, protocol.SymbolDot}, // boundary: still a dot
		{time.Second + time.Millisecond, protocol.SymbolDash},
		{1500 * time.Millisecond, protocol.SymbolDash},
		{time.Minute, protocol.SymbolDash},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ClassifyHold(c.held, timing), "held %v", c.held)
	}
}

func TestPollFastPathWhenIdle(t *testing.T) {
	r := newRig()
	button := idleButton(r.clock)
	cl := NewClassifier(button, r.act, r.timing, r.clock)

	require.Equal(t, protocol.SymbolNone, cl.Poll())
	assert.Equal(t, 1, button.polls, "idle poll must sample the pin once and return")
	assert.Zero(t, r.clock.elapsed(), "idle poll must not sleep")
}

func TestPollClassifiesDot(t *testing.T) {
	r := newRig()
	cl := NewClassifier(pressFor(r.clock, 300*time.Millisecond), r.act, r.timing, r.clock)

	require.Equal(t, protocol.SymbolDot, cl.Poll())
	assert.Zero(t, r.buzzer.onCount(), "no warn beep below the dash threshold")
}

func TestPollClassifiesSpuriousPress(t *testing.T) {
	r := newRig()
	cl := NewClassifier(pressFor(r.clock, 50*time.Millisecond), r.act, r.timing, r.clock)

	require.Equal(t, protocol.SymbolNone, cl.Poll())
}

func TestPollWarnsOncePerDashHold(t *testing.T) {
	r := newRig()
	cl := NewClassifier(pressFor(r.clock, 1500*time.Millisecond), r.act, r.timing, r.clock)

	require.Equal(t, protocol.SymbolDash, cl.Poll())

	require.Equal(t, 1, r.buzzer.onCount(), "warn beep fires exactly once per hold")
	warnAt := r.buzzer.events[0].at.Sub(time.Unix(0, 0))
	assert.Greater(t, warnAt, r.timing.DotHold, "warn fires only after the threshold")
	assert.LessOrEqual(t, warnAt, r.timing.DotHold+5*r.timing.Poll,
		"warn fires at the first instant past the threshold")
	assert.True(t, r.buzzer.endsLow())
}

// The warn flag resets with each press cycle: a second dash hold
// warns again.
func TestPollWarnResetsBetweenHolds(t *testing.T) {
	r := newRig()
	button := pressFor(r.clock, 1200*time.Millisecond)
	cl := NewClassifier(button, r.act, r.timing, r.clock)
	require.Equal(t, protocol.SymbolDash, cl.Poll())

	button.until = r.clock.now.Add(1200 * time.Millisecond)
	require.Equal(t, protocol.SymbolDash, cl.Poll())

	assert.Equal(t, 2, r.buzzer.onCount(), "each hold cycle warns independently")
}

func TestPollAppliesDebounce(t *testing.T) {
	r := newRig()
	hold := 300 * time.Millisecond
	cl := NewClassifier(pressFor(r.clock, hold), r.act, r.timing, r.clock)
	cl.Poll()

	assert.GreaterOrEqual(t, r.clock.elapsed(), hold+r.timing.Debounce,
		"release is followed by the debounce delay")
}
