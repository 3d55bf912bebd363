package source

import (
	"fmt"
)

// Span is a half-open [Lo, Hi) byte range in the global position space.
// Both ends must resolve to the same file; the parser is responsible for
// never merging spans across files.
type Span struct {
	Lo BytePos
	Hi BytePos
}

// DummySpan marks nodes with no source origin (synthesized nodes).
var DummySpan = Span{}

// NewSpan builds a span, panicking if lo > hi.
func NewSpan(lo, hi BytePos) Span {
	if lo > hi {
		panic(fmt.Sprintf("inverted span: %d > %d", lo, hi))
	}
	return Span{Lo: lo, Hi: hi}
}

// IsDummy reports whether the span carries no location.
func (s Span) IsDummy() bool {
	return s.Lo == NoPos && s.Hi == NoPos
}

func (s Span) Empty() bool {
	return s.Lo == s.Hi
}

func (s Span) Len() uint32 {
	return s.Hi.Sub(s.Lo)
}

// To returns the smallest span covering both s and other. A dummy
// operand yields the other span unchanged.
func (s Span) To(other Span) Span {
	if s.IsDummy() {
		return other
	}
	if other.IsDummy() {
		return s
	}
	if other.Lo < s.Lo {
		s.Lo = other.Lo
	}
	if other.Hi > s.Hi {
		s.Hi = other.Hi
	}
	return s
}

// Contains reports whether pos lies inside the span.
func (s Span) Contains(pos BytePos) bool {
	return s.Lo <= pos && pos < s.Hi
}

// WithLo returns the span with a new low end.
func (s Span) WithLo(lo BytePos) Span {
	return NewSpan(lo, s.Hi)
}

// WithHi returns the span with a new high end.
func (s Span) WithHi(hi BytePos) Span {
	return NewSpan(s.Lo, hi)
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Lo, s.Hi)
}
