package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jayfourjavier/HC12-MORSE-CODE-TRANSCIEVER/hc12"
)

func TestDefaultMatchesReferenceDevice(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, uint8(2), cfg.Pins.Button)
	assert.Equal(t, uint8(4), cfg.Pins.LED)
	assert.Equal(t, uint8(6), cfg.Pins.Buzzer)
	assert.Equal(t, uint8(8), cfg.Pins.Set)
	assert.Equal(t, 9600, cfg.Serial.Baud)
	assert.Equal(t, hc12.Responder, cfg.SessionRole())

	timing := cfg.TimingProfile()
	assert.Equal(t, 200*time.Millisecond, timing.DotDuration)
	assert.Equal(t, 600*time.Millisecond, timing.DashDuration)
	assert.Equal(t, time.Second, timing.SymbolGap)
	assert.Equal(t, time.Second, timing.DotHold)
}

func TestLoadOverridesAndDefaults(t *testing.T) {
	cfg, err := Load([]byte(`{
		"role": "initiator",
		"timing": {"dot_ms": 150, "dash_ms": 450},
		"serial": {"device": "/dev/ttyACM1"},
		"radio": {"channel": 21, "power": 5}
	}`))
	require.NoError(t, err)

	assert.Equal(t, hc12.Initiator, cfg.SessionRole())
	assert.Equal(t, "/dev/ttyACM1", cfg.Serial.Device)
	assert.Equal(t, 9600, cfg.Serial.Baud, "unset fields fall back to defaults")
	assert.Equal(t, 21, cfg.Radio.Channel)

	timing := cfg.TimingProfile()
	assert.Equal(t, 150*time.Millisecond, timing.DotDuration)
	assert.Equal(t, 450*time.Millisecond, timing.DashDuration)
	assert.Equal(t, time.Second, timing.SymbolGap)
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := []struct {
		name string
		json string
	}{
		{"bad json", `{`},
		{"bad role", `{"role": "spectator"}`},
		{"dot not shorter than dash", `{"timing": {"dot_ms": 600, "dash_ms": 600}}`},
		{"both test modes", `{"self_test": true, "link_test": true}`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Load([]byte(c.json))
			assert.Error(t, err)
		})
	}
}
