package protocol

// LineBuffer is a bounded circular buffer that accumulates a raw
// serial byte stream and splits it into complete line-delimited
// frames. Incomplete trailing data is retained until its terminator
// arrives. When the buffer fills, the oldest bytes are discarded so
// memory stays bounded; a runaway unterminated line loses its head
// rather than growing without limit.
type LineBuffer struct {
	buf   []byte
	read  int
	write int
	size  int
	lines int // number of complete terminators currently buffered
}

// DefaultLineCapacity is plenty for single-digit frames plus AT
// command responses.
const DefaultLineCapacity = 256

// NewLineBuffer creates a LineBuffer with the specified capacity.
func NewLineBuffer(capacity int) *LineBuffer {
	if capacity < 2 {
		capacity = 2
	}
	return &LineBuffer{
		buf:  make([]byte, capacity),
		size: capacity,
	}
}

// Write appends data to the buffer, discarding the oldest bytes on
// overflow. Returns the number of bytes accepted (always len(data)).
func (l *LineBuffer) Write(data []byte) int {
	for _, b := range data {
		next := (l.write + 1) % l.size
		if next == l.read {
			// Full: drop the oldest byte to make room.
			if l.buf[l.read] == '\n' {
				l.lines--
			}
			l.read = (l.read + 1) % l.size
		}
		l.buf[l.write] = b
		l.write = next
		if b == '\n' {
			l.lines++
		}
	}
	return len(data)
}

// WriteByte appends a single byte, for UART drain loops.
func (l *LineBuffer) WriteByte(b byte) error {
	l.Write([]byte{b})
	return nil
}

// HasLine reports whether at least one complete line is buffered.
func (l *LineBuffer) HasLine() bool {
	return l.lines > 0
}

// ReadLine pops the oldest complete line, with its terminator and any
// trailing carriage return stripped. Returns false if no complete
// line is buffered.
func (l *LineBuffer) ReadLine() (string, bool) {
	if l.lines == 0 {
		return "", false
	}
	out := make([]byte, 0, 16)
	for l.read != l.write {
		b := l.buf[l.read]
		l.read = (l.read + 1) % l.size
		if b == '\n' {
			l.lines--
			break
		}
		out = append(out, b)
	}
	if n := len(out); n > 0 && out[n-1] == '\r' {
		out = out[:n-1]
	}
	return string(out), true
}

// Available returns the number of buffered bytes, complete or not.
func (l *LineBuffer) Available() int {
	if l.write >= l.read {
		return l.write - l.read
	}
	return l.size - l.read + l.write
}

// IsEmpty returns true if nothing is buffered.
func (l *LineBuffer) IsEmpty() bool {
	return l.read == l.write
}

// Reset clears the buffer.
func (l *LineBuffer) Reset() {
	l.read = 0
	l.write = 0
	l.lines = 0
}
