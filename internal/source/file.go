package source

import (
	"crypto/sha256"
	"fmt"

	"fortio.org/safecast"
)

// FileFlags encodes metadata about how a source file was loaded.
type FileFlags uint8

const (
	// FileVirtual indicates the file was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
	FileTranscodedUTF16
)

// File holds the full text of one input plus the line index used for
// position lookups. Immutable after the SourceMap creates it.
type File struct {
	Name string
	// Src is the normalized file content.
	Src string
	// Base is the position assigned to the first byte of Src in the
	// global position space.
	Base BytePos
	// LineStarts holds the byte offset (relative to Base) of the first
	// byte of every line. LineStarts[0] is always 0.
	LineStarts []uint32
	Hash       [32]byte
	Flags      FileFlags
}

// LineCol is a human-readable position in a file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based, in bytes
}

func newFile(name, src string, base BytePos, flags FileFlags) *File {
	return &File{
		Name:       name,
		Src:        src,
		Base:       base,
		LineStarts: buildLineStarts(src),
		Hash:       sha256.Sum256([]byte(src)),
		Flags:      flags,
	}
}

// Size returns the file length in bytes.
func (f *File) Size() uint32 {
	n, err := safecast.Conv[uint32](len(f.Src))
	if err != nil {
		panic(fmt.Errorf("file size overflow: %w", err))
	}
	return n
}

// End returns the position one past the last byte of the file.
func (f *File) End() BytePos {
	return f.Base.Add(f.Size())
}

// ContainsPos reports whether pos belongs to this file. The end
// position is included so EOF diagnostics resolve to the last line.
func (f *File) ContainsPos(pos BytePos) bool {
	return f.Base <= pos && pos <= f.End()
}

// RelPos converts a global position into an offset within the file.
// Positions outside the file are a contract violation and panic.
func (f *File) RelPos(pos BytePos) uint32 {
	if !f.ContainsPos(pos) {
		panic(fmt.Sprintf("position %d is outside of file %q [%d..%d]", pos, f.Name, f.Base, f.End()))
	}
	return pos.Sub(f.Base)
}

// LineCol resolves a global position to 1-based line and column. The
// byte immediately after a '\n' is column 1 of the next line.
func (f *File) LineCol(pos BytePos) LineCol {
	off := f.RelPos(pos)
	line := lineFor(f.LineStarts, off)
	return LineCol{
		Line: line + 1,
		Col:  off - f.LineStarts[line] + 1,
	}
}

// Line returns the text of the 1-based line n without the trailing
// newline, or "" when the line does not exist.
func (f *File) Line(n uint32) string {
	if n == 0 || int(n) > len(f.LineStarts) {
		return ""
	}
	start := f.LineStarts[n-1]
	end := f.Size()
	if int(n) < len(f.LineStarts) {
		end = f.LineStarts[n] - 1 // drop the '\n'
	}
	if start > end {
		return ""
	}
	return f.Src[start:end]
}

// LineCount returns the number of lines in the file.
func (f *File) LineCount() int {
	return len(f.LineStarts)
}

// buildLineStarts records the offset of the first byte of every line.
func buildLineStarts(src string) []uint32 {
	starts := make([]uint32, 1, 16)
	starts[0] = 0
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			starts = append(starts, uint32(i)+1)
		}
	}
	return starts
}

// lineFor finds the 0-based line containing off: the largest i with
// starts[i] <= off.
func lineFor(starts []uint32, off uint32) uint32 {
	lo, hi := 0, len(starts)-1
	for lo < hi {
		mid := (lo + hi + 1) >> 1
		if starts[mid] <= off {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return uint32(lo)
}
