package core

import (
	"context"
	"time"

	"github.com/jayfourjavier/HC12-MORSE-CODE-TRANSCIEVER/protocol"
)

// Session is the main loop coordinator. The device has no persistent
// session state beyond "idle, ready to receive or send": every tick
// is a fresh decision between servicing an inbound frame and polling
// the local button.
//
// The inbound side always wins the tick. The link is half-duplex, so
// originating a transmission while a received frame is pending risks
// corrupting both directions; rendering first is the only mitigation
// the protocol has. The cost is that sustained inbound traffic
// starves local input. That is accepted: the protocol is human-paced
// and round-trip signals are infrequent.
type Session struct {
	Link       protocol.LineTransport
	Classifier *Classifier
	Actuator   *Actuator
	Clock      Clock

	// Poll paces idle ticks in Run.
	Poll time.Duration

	// Trace receives optional diagnostics. Nil disables tracing;
	// nothing in the session depends on it.
	Trace func(format string, args ...any)
}

// NewSession assembles a session around an already-wired classifier
// and actuator pair sharing the same timing profile.
func NewSession(link protocol.LineTransport, cl *Classifier, act *Actuator, clock Clock) *Session {
	return &Session{
		Link:       link,
		Classifier: cl,
		Actuator:   act,
		Clock:      clock,
		Poll:       cl.timing.Poll,
	}
}

// Tick runs one scheduler cycle with strict priority: render a
// pending inbound frame, else poll the button and transmit a
// completed symbol, else do nothing. A malformed inbound frame
// decodes to SymbolNone and is absorbed with no render and no error.
// Transport failures are the only thing Tick surfaces.
func (s *Session) Tick() error {
	if s.Link.Available() {
		line, err := s.Link.ReadLine()
		if err != nil {
			return err
		}
		sym := protocol.DecodeFrame(line)
		if !sym.Valid() {
			s.tracef("dropped malformed frame %q", line)
			return nil
		}
		s.tracef("received %s", sym)
		s.Actuator.Render(sym)
		return nil
	}

	sym := s.Classifier.Poll()
	if !sym.Valid() {
		return nil
	}
	s.tracef("sending %s", sym)
	return s.Link.WriteLine(protocol.EncodeSymbol(sym))
}

// Run ticks the session until the context is cancelled or the
// transport fails. Cancellation is observed between ticks only; the
// blocking waits inside a tick (button hold, render) are intentional
// and uninterruptible.
func (s *Session) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := s.Tick(); err != nil {
			return err
		}
		if s.Poll > 0 {
			s.Clock.Sleep(s.Poll)
		}
	}
}

func (s *Session) tracef(format string, args ...any) {
	if s.Trace != nil {
		s.Trace(format, args...)
	}
}
