// Package config loads the device configuration: pin wiring, timing
// profile, session role and the mutually exclusive test modes. The
// record is built once at startup and shared read-only.
package config

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jayfourjavier/HC12-MORSE-CODE-TRANSCIEVER/core"
	"github.com/jayfourjavier/HC12-MORSE-CODE-TRANSCIEVER/hc12"
)

// Config is the full device configuration. All durations are
// expressed in milliseconds in the JSON form.
type Config struct {
	// Role is "initiator" or "responder". Only the startup
	// collaborators consult it.
	Role string `json:"role"`

	// SelfTest runs the wiring jig instead of the session.
	SelfTest bool `json:"self_test"`

	// LinkTest runs the radio echo diagnostic instead of the
	// session.
	LinkTest bool `json:"link_test"`

	Pins   PinConfig    `json:"pins"`
	Timing TimingConfig `json:"timing"`
	Serial SerialConfig `json:"serial"`
	Radio  RadioConfig  `json:"radio"`
}

// PinConfig names the GPIO wiring on device targets.
type PinConfig struct {
	Button uint8 `json:"button"`
	LED    uint8 `json:"led"`
	Buzzer uint8 `json:"buzzer"`
	Set    uint8 `json:"set"`
}

// TimingConfig is the TimingProfile in milliseconds.
type TimingConfig struct {
	DotMS      int `json:"dot_ms"`
	DashMS     int `json:"dash_ms"`
	GapMS      int `json:"gap_ms"`
	MinPressMS int `json:"min_press_ms"`
	DotHoldMS  int `json:"dot_hold_ms"`
	WarnBeepMS int `json:"warn_beep_ms"`
	DebounceMS int `json:"debounce_ms"`
	PollMS     int `json:"poll_ms"`
}

// SerialConfig locates the radio's serial port on the host.
type SerialConfig struct {
	Device string `json:"device"`
	Baud   int    `json:"baud"`
}

// RadioConfig holds optional HC-12 parameters applied at startup.
// Zero values leave the module's stored settings alone.
type RadioConfig struct {
	Channel int `json:"channel"`
	Power   int `json:"power"`
}

// Load parses a JSON configuration, applies defaults and validates.
func Load(data []byte) (*Config, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the reference device wiring and timing.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// applyDefaults fills in missing values with the reference device
// constants.
func applyDefaults(cfg *Config) {
	if cfg.Role == "" {
		cfg.Role = "responder"
	}

	if cfg.Pins.Button == 0 {
		cfg.Pins.Button = 2
	}
	if cfg.Pins.LED == 0 {
		cfg.Pins.LED = 4
	}
	if cfg.Pins.Buzzer == 0 {
		cfg.Pins.Buzzer = 6
	}
	if cfg.Pins.Set == 0 {
		cfg.Pins.Set = 8
	}

	t := &cfg.Timing
	if t.DotMS == 0 {
		t.DotMS = 200
	}
	if t.DashMS == 0 {
		t.DashMS = 600
	}
	if t.GapMS == 0 {
		t.GapMS = 1000
	}
	if t.MinPressMS == 0 {
		t.MinPressMS = 100
	}
	if t.DotHoldMS == 0 {
		t.DotHoldMS = 1000
	}
	if t.WarnBeepMS == 0 {
		t.WarnBeepMS = 100
	}
	if t.DebounceMS == 0 {
		t.DebounceMS = 50
	}
	if t.PollMS == 0 {
		t.PollMS = 1
	}

	if cfg.Serial.Device == "" {
		cfg.Serial.Device = "/dev/ttyUSB0"
	}
	if cfg.Serial.Baud == 0 {
		cfg.Serial.Baud = 9600 // HC-12 factory setting
	}
}

// Validate checks the cross-field invariants.
func (c *Config) Validate() error {
	if c.Role != "initiator" && c.Role != "responder" {
		return fmt.Errorf("config: role must be initiator or responder, got %q", c.Role)
	}
	if c.SelfTest && c.LinkTest {
		return fmt.Errorf("config: self_test and link_test are mutually exclusive")
	}
	if err := c.TimingProfile().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// TimingProfile converts the millisecond fields into the immutable
// profile the core components share.
func (c *Config) TimingProfile() core.TimingProfile {
	ms := func(v int) time.Duration { return time.Duration(v) * time.Millisecond }
	return core.TimingProfile{
		DotDuration:  ms(c.Timing.DotMS),
		DashDuration: ms(c.Timing.DashMS),
		SymbolGap:    ms(c.Timing.GapMS),
		MinPress:     ms(c.Timing.MinPressMS),
		DotHold:      ms(c.Timing.DotHoldMS),
		WarnBeep:     ms(c.Timing.WarnBeepMS),
		Debounce:     ms(c.Timing.DebounceMS),
		Poll:         ms(c.Timing.PollMS),
	}
}

// SessionRole maps the role string onto the hc12 role.
func (c *Config) SessionRole() hc12.Role {
	if c.Role == "initiator" {
		return hc12.Initiator
	}
	return hc12.Responder
}
