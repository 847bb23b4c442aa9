package protocol

import (
	"bytes"
	"io"
	"sync"
	"testing"
	"time"
)

func TestPipeCrossesLines(t *testing.T) {
	a, b := Pipe()

	if a.Available() || b.Available() {
		t.Fatal("fresh pipe should be idle on both ends")
	}

	if err := a.WriteLine("1"); err != nil {
		t.Fatalf("WriteLine: %v", err)
	}
	if a.Available() {
		t.Error("writer side should not see its own frame")
	}
	if !b.Available() {
		t.Fatal("reader side should see the frame")
	}
	line, err := b.ReadLine()
	if err != nil || line != "1" {
		t.Errorf("ReadLine = %q, %v; want \"1\", nil", line, err)
	}

	if err := b.WriteLine("2"); err != nil {
		t.Fatalf("WriteLine: %v", err)
	}
	line, err = a.ReadLine()
	if err != nil || line != "2" {
		t.Errorf("ReadLine = %q, %v; want \"2\", nil", line, err)
	}
}

// scriptStream serves pre-recorded chunks, simulates serial read
// timeouts between them, then blocks until closed.
type scriptStream struct {
	mu     sync.Mutex
	chunks [][]byte
	wrote  bytes.Buffer
	closed chan struct{}
}

func newScriptStream(chunks ...[]byte) *scriptStream {
	return &scriptStream{chunks: chunks, closed: make(chan struct{})}
}

func (s *scriptStream) Read(p []byte) (int, error) {
	s.mu.Lock()
	if len(s.chunks) > 0 {
		chunk := s.chunks[0]
		s.chunks = s.chunks[1:]
		n := copy(p, chunk)
		s.mu.Unlock()
		return n, io.EOF // idle timeout after every chunk
	}
	s.mu.Unlock()
	<-s.closed
	return 0, io.ErrClosedPipe
}

func (s *scriptStream) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wrote.Write(p)
}

func (s *scriptStream) Close() error {
	close(s.closed)
	return nil
}

func waitAvailable(t *testing.T, tr LineTransport) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !tr.Available() {
		if time.Now().After(deadline) {
			t.Fatal("timed out waiting for inbound frame")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestStreamTransportReassemblesFrames(t *testing.T) {
	stream := newScriptStream([]byte("1\r"), []byte("\n2"), []byte("\r\n"))
	tr := NewStreamTransport(stream)
	defer tr.Close()

	waitAvailable(t, tr)
	line, err := tr.ReadLine()
	if err != nil || line != "1" {
		t.Errorf("ReadLine = %q, %v; want \"1\", nil", line, err)
	}

	waitAvailable(t, tr)
	line, err = tr.ReadLine()
	if err != nil || line != "2" {
		t.Errorf("ReadLine = %q, %v; want \"2\", nil", line, err)
	}
}

func TestStreamTransportWriteAppendsTerminator(t *testing.T) {
	stream := newScriptStream()
	tr := NewStreamTransport(stream)
	defer tr.Close()

	if err := tr.WriteLine("2"); err != nil {
		t.Fatalf("WriteLine: %v", err)
	}
	stream.mu.Lock()
	got := stream.wrote.String()
	stream.mu.Unlock()
	if got != "2\r\n" {
		t.Errorf("wrote %q, want \"2\\r\\n\"", got)
	}
}
