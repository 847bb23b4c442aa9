package core

// Button is the abstract input interface the core code uses.
// Platform-specific adapters handle the actual pin read, including
// the active-low inversion of a pull-up wired push-button.
type Button interface {
	// Pressed reports whether the button is physically held down.
	Pressed() bool
}

// Signaler is the abstract output interface for the LED, the buzzer
// and the HC-12 SET pin. Adapters own polarity.
type Signaler interface {
	// Set drives the output on (true) or off (false).
	Set(on bool)
}

// ButtonFunc adapts a plain function to Button.
type ButtonFunc func() bool

// Pressed implements Button.
func (f ButtonFunc) Pressed() bool { return f() }

// SignalerFunc adapts a plain function to Signaler.
type SignalerFunc func(on bool)

// Set implements Signaler.
func (f SignalerFunc) Set(on bool) { f(on) }
