// Package hc12 drives the HC-12 433MHz serial radio module's command
// interface. The module is a transparent serial pipe in normal mode;
// pulling its SET pin low switches it to an AT command mode used for
// the startup probe and for channel/power/baud configuration.
package hc12

import (
	"fmt"
	"strings"
	"time"

	"github.com/jayfourjavier/HC12-MORSE-CODE-TRANSCIEVER/core"
	"github.com/jayfourjavier/HC12-MORSE-CODE-TRANSCIEVER/protocol"
)

// Role selects who speaks first during link establishment. It only
// affects the startup collaborators (handshake probe, link test),
// never the core session logic.
type Role int

const (
	// Responder waits for the peer.
	Responder Role = iota
	// Initiator sends the first frame.
	Initiator
)

// String returns a human readable role name.
func (r Role) String() string {
	if r == Initiator {
		return "initiator"
	}
	return "responder"
}

const (
	// powerUpDelay lets the module settle after a mode switch.
	powerUpDelay = time.Second

	// commandWindow is how long the module gets to answer one AT
	// command.
	commandWindow = 100 * time.Millisecond
)

// Radio is the configuration-side handle for the module. The data
// path goes through the same LineTransport the session uses; Radio
// only borrows it while the SET pin holds the module in command mode.
type Radio struct {
	set   core.Signaler
	link  protocol.LineTransport
	clock core.Clock
}

// New wires a radio handle. The SET adapter must map Set(true) to the
// pin level for transparent mode and Set(false) to command mode.
func New(set core.Signaler, link protocol.LineTransport, clock core.Clock) *Radio {
	return &Radio{set: set, link: link, clock: clock}
}

// Setup probes the module with a bare AT and reports whether it
// acknowledged. The module is returned to transparent mode in every
// path, including failure: a dead or deaf radio is non-fatal and the
// device continues in degraded mode, so the caller only beeps the
// failure pattern and carries on.
func (r *Radio) Setup() bool {
	r.set.Set(false)
	defer r.set.Set(true)

	r.clock.Sleep(powerUpDelay)

	if err := r.link.WriteLine("AT"); err != nil {
		return false
	}
	r.clock.Sleep(commandWindow)

	if !r.link.Available() {
		return false
	}
	resp, err := r.link.ReadLine()
	if err != nil {
		return false
	}
	return strings.HasPrefix(resp, "OK")
}

// Settings selects the optional radio parameters Configure applies.
// Zero values leave the corresponding parameter untouched.
type Settings struct {
	// Channel is the RF channel, 1..127 (400kHz spacing).
	Channel int

	// Power is the transmit power grade, 1..8 (-1dBm..20dBm).
	Power int

	// Baud is the air/serial baud rate; must be one the module
	// supports.
	Baud int
}

var validBauds = map[int]bool{
	1200: true, 2400: true, 4800: true, 9600: true,
	19200: true, 38400: true, 57600: true, 115200: true,
}

// Configure applies the given settings inside one command-mode span.
// Unlike Setup, a rejected or unanswered command is an error: the
// operator explicitly asked for a parameter change and silently
// keeping the old one would be worse than failing.
func (r *Radio) Configure(s Settings) error {
	if s.Channel != 0 && (s.Channel < 1 || s.Channel > 127) {
		return fmt.Errorf("hc12: channel %d out of range 1..127", s.Channel)
	}
	if s.Power != 0 && (s.Power < 1 || s.Power > 8) {
		return fmt.Errorf("hc12: power grade %d out of range 1..8", s.Power)
	}
	if s.Baud != 0 && !validBauds[s.Baud] {
		return fmt.Errorf("hc12: unsupported baud %d", s.Baud)
	}

	r.set.Set(false)
	defer r.set.Set(true)
	r.clock.Sleep(powerUpDelay)

	if s.Channel != 0 {
		if err := r.command(fmt.Sprintf("AT+C%03d", s.Channel)); err != nil {
			return err
		}
	}
	if s.Power != 0 {
		if err := r.command(fmt.Sprintf("AT+P%d", s.Power)); err != nil {
			return err
		}
	}
	if s.Baud != 0 {
		if err := r.command(fmt.Sprintf("AT+B%d", s.Baud)); err != nil {
			return err
		}
	}
	return nil
}

// command sends one AT command and checks for an OK-prefixed reply
// within the command window.
func (r *Radio) command(cmd string) error {
	if err := r.link.WriteLine(cmd); err != nil {
		return err
	}
	r.clock.Sleep(commandWindow)

	if !r.link.Available() {
		return fmt.Errorf("hc12: no response to %s", cmd)
	}
	resp, err := r.link.ReadLine()
	if err != nil {
		return err
	}
	if !strings.HasPrefix(resp, "OK") {
		return fmt.Errorf("hc12: %s rejected: %q", cmd, resp)
	}
	return nil
}
