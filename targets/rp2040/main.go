//go:build rp2040 || rp2350

package main

import (
	"context"
	"fmt"
	"machine"

	"github.com/jayfourjavier/HC12-MORSE-CODE-TRANSCIEVER/config"
	"github.com/jayfourjavier/HC12-MORSE-CODE-TRANSCIEVER/core"
	"github.com/jayfourjavier/HC12-MORSE-CODE-TRANSCIEVER/hc12"
)

func main() {
	cfg := config.Default()
	timing := cfg.TimingProfile()
	clock := core.SystemClock()

	button := newPullUpButton(machine.Pin(cfg.Pins.Button))
	led := newOutputPin(machine.Pin(cfg.Pins.LED))
	buzz := newBuzzerOut(machine.Pin(cfg.Pins.Buzzer))
	set := newOutputPin(machine.Pin(cfg.Pins.Set))
	// Transparent mode until the handshake deliberately drops SET.
	set.Set(true)

	link := newUARTTransport(machine.UART0, cfg.Serial.Baud)

	actuator := core.NewActuator(led, buzz, timing, clock)
	classifier := core.NewClassifier(button, actuator, timing, clock)
	session := core.NewSession(link, classifier, actuator, clock)
	session.Trace = traceln

	if cfg.SelfTest {
		// Wiring jig replaces normal operation entirely.
		jig := &core.SelfTest{Button: button, LED: led, Buzzer: buzz, Clock: clock}
		_ = jig.Run(context.Background())
		return
	}

	radio := hc12.New(set, link, clock)
	if radio.Setup() {
		traceln("radio acknowledged")
		actuator.SignalReady()
	} else {
		// Non-fatal: keep running, receive may still work.
		traceln("radio setup failed, continuing degraded")
		actuator.SignalFailure()
	}
	if cfg.Radio.Channel != 0 || cfg.Radio.Power != 0 {
		if err := radio.Configure(hc12.Settings{
			Channel: cfg.Radio.Channel,
			Power:   cfg.Radio.Power,
		}); err != nil {
			traceln("radio configure: %v", err)
		}
	}

	if cfg.LinkTest {
		lt := &hc12.LinkTest{
			Role:  cfg.SessionRole(),
			Link:  link,
			Clock: clock,
			Trace: traceln,
		}
		_ = lt.Run(context.Background())
		return
	}

	_ = session.Run(context.Background())
}

// traceln prints diagnostics on the debug console (USB CDC).
func traceln(format string, args ...any) {
	println(fmt.Sprintf(format, args...))
}
