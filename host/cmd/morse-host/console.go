package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/abiosoft/ishell"
	"github.com/golang/glog"

	"github.com/jayfourjavier/HC12-MORSE-CODE-TRANSCIEVER/config"
	"github.com/jayfourjavier/HC12-MORSE-CODE-TRANSCIEVER/core"
	"github.com/jayfourjavier/HC12-MORSE-CODE-TRANSCIEVER/hc12"
	"github.com/jayfourjavier/HC12-MORSE-CODE-TRANSCIEVER/protocol"
)

// consoleSignaler renders a device output as console text, keeping
// the render timing of the real LED/buzzer pair.
type consoleSignaler struct {
	name string
}

func (s consoleSignaler) Set(on bool) {
	if on {
		fmt.Printf("[%s on]\n", s.name)
	} else {
		fmt.Printf("[%s off]\n", s.name)
	}
}

// setStrap stands in for the HC-12 SET pin. A bare USB-TTL adapter
// has no spare control line wired to SET, so the operator straps it
// by hand when prompted.
type setStrap struct{}

func (setStrap) Set(on bool) {
	if on {
		fmt.Println(">> release the SET strap (transparent mode)")
	} else {
		fmt.Println(">> pull SET low now (command mode)")
	}
}

func runConsole(cfg *config.Config, link protocol.LineTransport) {
	timing := cfg.TimingProfile()
	clock := core.SystemClock()

	actuator := core.NewActuator(consoleSignaler{"led"}, consoleSignaler{"buzzer"}, timing, clock)
	// The host has no push-button; its classifier never yields a
	// symbol, which makes the session receive-only while the dot and
	// dash commands transmit directly.
	classifier := core.NewClassifier(
		core.ButtonFunc(func() bool { return false }),
		actuator, timing, clock)
	session := core.NewSession(link, classifier, actuator, clock)
	session.Trace = func(format string, args ...any) {
		glog.Infof(format, args...)
	}
	radio := hc12.New(setStrap{}, link, clock)

	shell := ishell.New()
	shell.Println("morse-host - HC-12 morse link console")
	shell.SetPrompt(fmt.Sprintf("[%s] > ", cfg.SessionRole()))

	shell.AddCmd(&ishell.Cmd{
		Name: "dot",
		Help: "send a dot",
		Func: func(c *ishell.Context) { send(c, link, protocol.SymbolDot) },
	})
	shell.AddCmd(&ishell.Cmd{
		Name: "dash",
		Help: "send a dash",
		Func: func(c *ishell.Context) { send(c, link, protocol.SymbolDash) },
	})
	shell.AddCmd(&ishell.Cmd{
		Name: "listen",
		Help: "[SECONDS] render inbound symbols (default 30s)",
		Func: func(c *ishell.Context) {
			ctx, cancel := context.WithTimeout(context.Background(), argSeconds(c, 30))
			defer cancel()
			c.Println("listening...")
			if err := session.Run(ctx); !errors.Is(err, context.DeadlineExceeded) {
				c.Err(err)
			}
		},
	})
	shell.AddCmd(&ishell.Cmd{
		Name: "setup",
		Help: "probe the radio with AT",
		Func: func(c *ishell.Context) {
			if radio.Setup() {
				c.Println("radio acknowledged")
			} else {
				c.Println("no acknowledgment; link may be receive-degraded")
			}
		},
	})
	shell.AddCmd(&ishell.Cmd{
		Name: "channel",
		Help: "N  set the RF channel (1..127)",
		Func: func(c *ishell.Context) {
			n, ok := argInt(c)
			if !ok {
				return
			}
			configure(c, radio, hc12.Settings{Channel: n})
		},
	})
	shell.AddCmd(&ishell.Cmd{
		Name: "power",
		Help: "N  set the transmit power grade (1..8)",
		Func: func(c *ishell.Context) {
			n, ok := argInt(c)
			if !ok {
				return
			}
			configure(c, radio, hc12.Settings{Power: n})
		},
	})
	shell.AddCmd(&ishell.Cmd{
		Name: "linktest",
		Help: "[SECONDS] run the echo diagnostic (default 30s)",
		Func: func(c *ishell.Context) {
			lt := &hc12.LinkTest{
				Role:  cfg.SessionRole(),
				Link:  link,
				Clock: clock,
				Trace: func(format string, args ...any) {
					c.Printf(format+"\n", args...)
				},
			}
			ctx, cancel := context.WithTimeout(context.Background(), argSeconds(c, 30))
			defer cancel()
			if err := lt.Run(ctx); !errors.Is(err, context.DeadlineExceeded) {
				c.Err(err)
			}
		},
	})

	shell.Run()
}

func send(c *ishell.Context, link protocol.LineTransport, sym protocol.Symbol) {
	if err := link.WriteLine(protocol.EncodeSymbol(sym)); err != nil {
		c.Err(err)
		return
	}
	c.Printf("sent %s\n", sym)
}

func configure(c *ishell.Context, radio *hc12.Radio, s hc12.Settings) {
	if err := radio.Configure(s); err != nil {
		c.Err(err)
		return
	}
	c.Println("ok")
}

func argInt(c *ishell.Context) (int, bool) {
	if len(c.Args) < 1 {
		c.Err(fmt.Errorf("value required"))
		return 0, false
	}
	n, err := strconv.Atoi(c.Args[0])
	if err != nil {
		c.Err(fmt.Errorf("invalid value: %v", err))
		return 0, false
	}
	return n, true
}

func argSeconds(c *ishell.Context, def int) time.Duration {
	if len(c.Args) < 1 {
		return time.Duration(def) * time.Second
	}
	n, err := strconv.Atoi(c.Args[0])
	if err != nil || n <= 0 {
		return time.Duration(def) * time.Second
	}
	return time.Duration(n) * time.Second
}
