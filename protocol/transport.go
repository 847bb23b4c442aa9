package protocol

import (
	"fmt"
	"io"
	"sync"
)

// LineTransport abstracts the half-duplex, line-oriented radio
// channel. The HC-12 gives no protection against write-while-receive
// collisions at the physical layer; the session's inbound-first
// priority rule is the only mitigation, so implementations must keep
// Available a cheap non-blocking poll.
type LineTransport interface {
	// Available reports whether a complete inbound frame is ready.
	Available() bool

	// ReadLine returns the next complete inbound line with its
	// terminator stripped. Only meaningful after Available reports
	// true.
	ReadLine() (string, error)

	// WriteLine transmits one line, appending the terminator.
	WriteLine(s string) error
}

// LineTerminator is what the reference device appends to every frame
// (Arduino println). Reads accept a bare "\n" and strip any trailing
// "\r".
const LineTerminator = "\r\n"

// StreamTransport adapts a byte stream (typically a serial port) into
// a LineTransport. A background goroutine drains the stream into a
// LineBuffer so Available stays non-blocking.
type StreamTransport struct {
	rw io.ReadWriter

	mu    sync.Mutex
	lines *LineBuffer
	err   error

	closed chan struct{}
}

// NewStreamTransport starts the reader goroutine and returns the
// transport. Close stops the goroutine (and the underlying stream, if
// it is an io.Closer).
func NewStreamTransport(rw io.ReadWriter) *StreamTransport {
	t := &StreamTransport{
		rw:     rw,
		lines:  NewLineBuffer(DefaultLineCapacity),
		closed: make(chan struct{}),
	}
	go t.readLoop()
	return t
}

func (t *StreamTransport) readLoop() {
	buf := make([]byte, 64)
	for {
		select {
		case <-t.closed:
			return
		default:
		}
		n, err := t.rw.Read(buf)
		if n > 0 {
			t.mu.Lock()
			t.lines.Write(buf[:n])
			t.mu.Unlock()
		}
		if err != nil {
			// Serial ports with a read timeout report io.EOF on an
			// idle window; keep polling. Anything else ends the loop.
			if err == io.EOF {
				continue
			}
			t.mu.Lock()
			t.err = err
			t.mu.Unlock()
			return
		}
	}
}

// Available implements LineTransport.
func (t *StreamTransport) Available() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lines.HasLine()
}

// ReadLine implements LineTransport.
func (t *StreamTransport) ReadLine() (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if line, ok := t.lines.ReadLine(); ok {
		return line, nil
	}
	if t.err != nil {
		return "", fmt.Errorf("transport read: %w", t.err)
	}
	return "", nil
}

// WriteLine implements LineTransport.
func (t *StreamTransport) WriteLine(s string) error {
	if _, err := t.rw.Write([]byte(s + LineTerminator)); err != nil {
		return fmt.Errorf("transport write: %w", err)
	}
	return nil
}

// Close stops the reader goroutine and closes the underlying stream
// when it supports closing.
func (t *StreamTransport) Close() error {
	select {
	case <-t.closed:
	default:
		close(t.closed)
	}
	if c, ok := t.rw.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
