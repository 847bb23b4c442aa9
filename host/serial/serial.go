package serial

import (
	"io"
)

// Port represents a serial port interface.
// This abstraction allows for different implementations:
// - Native serial (using github.com/tarm/serial) for a USB-TTL
//   adapter wired to the HC-12
// - Mock serial (for testing)
type Port interface {
	io.ReadWriteCloser

	// Flush flushes any buffered data
	Flush() error
}

// Config holds serial port configuration
type Config struct {
	// Device path (e.g., "/dev/ttyUSB0", "COM3")
	Device string

	// Baud rate (HC-12 factory setting is 9600)
	Baud int

	// Read timeout in milliseconds (0 = blocking). A short timeout
	// keeps the transport reader responsive to shutdown.
	ReadTimeout int
}

// DefaultConfig returns a configuration matching a factory HC-12
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        9600,
		ReadTimeout: 100, // 100ms read timeout
	}
}
