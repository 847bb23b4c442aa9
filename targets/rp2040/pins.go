//go:build rp2040 || rp2350

package main

import (
	"machine"

	"tinygo.org/x/drivers/buzzer"
)

// pullUpButton adapts an active-low push-button wired between the
// pin and ground. The pull-up keeps the idle level high, so pressed
// reads low.
type pullUpButton struct {
	pin machine.Pin
}

func newPullUpButton(pin machine.Pin) pullUpButton {
	pin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	return pullUpButton{pin: pin}
}

func (b pullUpButton) Pressed() bool {
	return !b.pin.Get()
}

// outputPin adapts a plain digital output (LED, HC-12 SET).
type outputPin struct {
	pin machine.Pin
}

func newOutputPin(pin machine.Pin) outputPin {
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	pin.Low()
	return outputPin{pin: pin}
}

func (o outputPin) Set(on bool) {
	if on {
		o.pin.High()
	} else {
		o.pin.Low()
	}
}

// buzzerOut adapts the drivers buzzer device.
type buzzerOut struct {
	dev buzzer.Device
}

func newBuzzerOut(pin machine.Pin) buzzerOut {
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return buzzerOut{dev: buzzer.New(pin)}
}

func (b buzzerOut) Set(on bool) {
	if on {
		_ = b.dev.On()
	} else {
		_ = b.dev.Off()
	}
}
