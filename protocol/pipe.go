package protocol

import "sync"

// Pipe creates two LineTransports connected back to back in memory:
// everything written on one side becomes readable on the other. It
// behaves like an ideal radio link (no loss, no corruption) and is
// used to exercise two sessions against each other without hardware.
func Pipe() (a, b LineTransport) {
	mu := &sync.Mutex{}
	left := NewLineBuffer(DefaultLineCapacity)
	right := NewLineBuffer(DefaultLineCapacity)
	return &pipeEnd{mu: mu, in: left, out: right},
		&pipeEnd{mu: mu, in: right, out: left}
}

type pipeEnd struct {
	mu  *sync.Mutex
	in  *LineBuffer
	out *LineBuffer
}

func (p *pipeEnd) Available() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.in.HasLine()
}

func (p *pipeEnd) ReadLine() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	line, _ := p.in.ReadLine()
	return line, nil
}

func (p *pipeEnd) WriteLine(s string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.out.Write([]byte(s + LineTerminator))
	return nil
}
