package source

import (
	"fmt"

	"fortio.org/safecast"
)

// BytePos is an absolute byte offset in the global position space of a
// SourceMap. Every loaded file owns a disjoint range of positions, so a
// BytePos alone identifies both the file and the offset within it.
type BytePos uint32

// CharPos is a character (rune) offset, used when a consumer needs
// column counts in characters instead of bytes.
type CharPos uint32

// NoPos is the zero position. No file ever owns it; file bases start at
// NoPos+1 so a zero value is always recognizable as "no position".
const NoPos BytePos = 0

// MaxBytePos bounds the global position space.
const MaxBytePos = BytePos(^uint32(0))

// IsValid reports whether p is a real position rather than NoPos.
func (p BytePos) IsValid() bool {
	return p != NoPos
}

// Add advances the position by n bytes, panicking on overflow of the
// position space.
func (p BytePos) Add(n uint32) BytePos {
	sum, err := safecast.Conv[uint32](uint64(p) + uint64(n))
	if err != nil {
		panic(fmt.Sprintf("position overflow: %d + %d", p, n))
	}
	return BytePos(sum)
}

// Sub returns the distance to q, which must not come after p.
func (p BytePos) Sub(q BytePos) uint32 {
	if q > p {
		panic(fmt.Sprintf("position underflow: %d - %d", p, q))
	}
	return uint32(p - q)
}
