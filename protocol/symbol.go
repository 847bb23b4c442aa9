package protocol

import (
	"strconv"
	"strings"
)

// Symbol is one discrete morse unit exchanged between devices.
// The numeric values double as the wire codes.
type Symbol int

const (
	// SymbolNone means "no symbol": a spurious press, a malformed
	// inbound frame, or simply nothing to do this tick.
	SymbolNone Symbol = 0

	// SymbolDot is a short press, rendered with the dot duration.
	SymbolDot Symbol = 1

	// SymbolDash is a long press, rendered with the dash duration.
	SymbolDash Symbol = 2
)

// String returns a human readable name for diagnostics.
func (s Symbol) String() string {
	switch s {
	case SymbolDot:
		return "dot"
	case SymbolDash:
		return "dash"
	case SymbolNone:
		return "none"
	}
	return "symbol(" + strconv.Itoa(int(s)) + ")"
}

// Valid reports whether the symbol is transmittable.
func (s Symbol) Valid() bool {
	return s == SymbolDot || s == SymbolDash
}

// EncodeSymbol returns the wire payload for a symbol: "1" for dot,
// "2" for dash. SymbolNone is never transmitted; callers must filter
// it before encoding, and it maps to the empty payload.
func EncodeSymbol(s Symbol) string {
	if !s.Valid() {
		return ""
	}
	return strconv.Itoa(int(s))
}

// DecodeFrame parses one received line into a Symbol. Decoding is
// total: the line terminator and surrounding whitespace are stripped,
// the rest is parsed as a decimal integer, and any payload that is not
// exactly 1 or 2 (malformed, empty, out of range) degrades to
// SymbolNone. A garbled frame produces no visible effect at the
// receiver; there is no error to propagate.
func DecodeFrame(line string) Symbol {
	v, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return SymbolNone
	}
	switch Symbol(v) {
	case SymbolDot:
		return SymbolDot
	case SymbolDash:
		return SymbolDash
	}
	return SymbolNone
}
