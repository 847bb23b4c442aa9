// morse-host is the workstation-side endpoint of the morse link: an
// HC-12 on a USB-TTL adapter, an interactive console instead of a
// button, and the same wire protocol the device targets speak.
package main

import (
	"flag"
	"os"

	"github.com/golang/glog"

	"github.com/jayfourjavier/HC12-MORSE-CODE-TRANSCIEVER/config"
	"github.com/jayfourjavier/HC12-MORSE-CODE-TRANSCIEVER/host/serial"
	"github.com/jayfourjavier/HC12-MORSE-CODE-TRANSCIEVER/protocol"
)

var (
	configPath = flag.String("config", "", "Path to JSON device configuration")
	device     = flag.String("device", "", "Serial device of the radio adapter (overrides config)")
	baud       = flag.Int("baud", 0, "Baud rate (overrides config)")
)

func main() {
	flag.Parse()

	cfg := loadConfig()
	if *device != "" {
		cfg.Serial.Device = *device
	}
	if *baud != 0 {
		cfg.Serial.Baud = *baud
	}

	port, err := serial.Open(&serial.Config{
		Device:      cfg.Serial.Device,
		Baud:        cfg.Serial.Baud,
		ReadTimeout: 100,
	})
	if err != nil {
		glog.Exitf("failed to open radio port: %v", err)
	}

	transport := protocol.NewStreamTransport(port)
	defer transport.Close()

	glog.Infof("radio on %s at %d baud, role %s",
		cfg.Serial.Device, cfg.Serial.Baud, cfg.SessionRole())
	runConsole(cfg, transport)
}

func loadConfig() *config.Config {
	if *configPath == "" {
		return config.Default()
	}
	data, err := os.ReadFile(*configPath)
	if err != nil {
		glog.Exitf("failed to read config: %v", err)
	}
	cfg, err := config.Load(data)
	if err != nil {
		glog.Exit(err)
	}
	return cfg
}
