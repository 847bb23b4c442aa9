//go:build rp2040 || rp2350

package main

import (
	"machine"

	"github.com/jayfourjavier/HC12-MORSE-CODE-TRANSCIEVER/protocol"
)

// uartTransport is the device-side LineTransport: the HC-12 hangs off
// UART0 in transparent mode. The UART's own ring buffer is drained
// into a LineBuffer on every poll, so Available stays non-blocking
// and no reader goroutine is needed.
type uartTransport struct {
	uart  *machine.UART
	lines *protocol.LineBuffer
}

func newUARTTransport(uart *machine.UART, baud int) *uartTransport {
	uart.Configure(machine.UARTConfig{
		BaudRate: uint32(baud),
		TX:       machine.UART0_TX_PIN,
		RX:       machine.UART0_RX_PIN,
	})
	return &uartTransport{
		uart:  uart,
		lines: protocol.NewLineBuffer(protocol.DefaultLineCapacity),
	}
}

func (t *uartTransport) drain() {
	for t.uart.Buffered() > 0 {
		b, err := t.uart.ReadByte()
		if err != nil {
			return
		}
		_ = t.lines.WriteByte(b)
	}
}

func (t *uartTransport) Available() bool {
	t.drain()
	return t.lines.HasLine()
}

func (t *uartTransport) ReadLine() (string, error) {
	t.drain()
	line, _ := t.lines.ReadLine()
	return line, nil
}

func (t *uartTransport) WriteLine(s string) error {
	_, err := t.uart.Write([]byte(s + protocol.LineTerminator))
	return err
}
