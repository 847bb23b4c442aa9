package hc12

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/jayfourjavier/HC12-MORSE-CODE-TRANSCIEVER/core"
	"github.com/jayfourjavier/HC12-MORSE-CODE-TRANSCIEVER/protocol"
)

const (
	// settleDelay before the initiator's opening frame.
	settleDelay = time.Second

	// replyDelay between receiving a value and echoing it back.
	replyDelay = 500 * time.Millisecond

	// idlePoll paces the inbound wait.
	idlePoll = time.Millisecond
)

// LinkTest is the over-the-air diagnostic: the initiator sends "1",
// and each side replies with the received value plus one after a
// short pause, exactly once per received value. A healthy link shows
// the counter climbing on both consoles; a one-way link stalls it.
// Mutually exclusive with a normal session.
type LinkTest struct {
	Role  Role
	Link  protocol.LineTransport
	Clock core.Clock

	// Trace receives the received/sent values. Nil disables it.
	Trace func(format string, args ...any)
}

// Run exchanges counter values until the context is cancelled or the
// transport fails.
func (t *LinkTest) Run(ctx context.Context) error {
	if t.Role == Initiator {
		t.Clock.Sleep(settleDelay)
		t.tracef("sent 1")
		if err := t.Link.WriteLine("1"); err != nil {
			return err
		}
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if !t.Link.Available() {
			t.Clock.Sleep(idlePoll)
			continue
		}
		line, err := t.Link.ReadLine()
		if err != nil {
			return err
		}
		v, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || v <= 0 {
			t.tracef("dropped %q", line)
			continue
		}
		t.tracef("received %d, sent %d", v, v+1)

		t.Clock.Sleep(replyDelay)
		if err := t.Link.WriteLine(strconv.Itoa(v + 1)); err != nil {
			return err
		}
	}
}

func (t *LinkTest) tracef(format string, args ...any) {
	if t.Trace != nil {
		t.Trace(format, args...)
	}
}
