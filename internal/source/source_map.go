package source

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// ErrPosSpaceExhausted reports that the global position space cannot
// hold another file. No further spans can be issued, so callers must
// treat it as fatal rather than skip the file.
var ErrPosSpaceExhausted = errors.New("source map position space exhausted")

// Position is a fully resolved location, ready for rendering.
type Position struct {
	Filename string
	Line     uint32 // 1-based
	Col      uint32 // 1-based
}

func (p Position) String() string {
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Col)
}

// SourceMap owns the loaded files of one compilation and assigns each a
// disjoint range of the global position space, in insertion order.
//
// Confined to a single session; no internal locking.
type SourceMap struct {
	files  []*File
	byName map[string]*File
	// nextBase is the base for the next file. Bases start at 1 so that
	// NoPos never falls inside a file.
	nextBase BytePos
}

func NewSourceMap() *SourceMap {
	return &SourceMap{
		byName:   make(map[string]*File),
		nextBase: NoPos + 1,
	}
}

// AddFile registers src under name and returns the new file. It fails
// when the name is already taken or when the contents would exhaust the
// position space; the latter is a fatal condition for the caller.
func (sm *SourceMap) AddFile(name, src string, flags FileFlags) (*File, error) {
	name = normalizePath(name)
	if _, ok := sm.byName[name]; ok {
		return nil, fmt.Errorf("file %q is already loaded", name)
	}
	if uint64(sm.nextBase)+uint64(len(src))+1 > uint64(MaxBytePos) {
		return nil, fmt.Errorf("cannot load %q: %w", name, ErrPosSpaceExhausted)
	}
	f := newFile(name, src, sm.nextBase, flags)
	// +1 keeps a gap between files so an EOF position of one file never
	// aliases the first byte of the next.
	sm.nextBase = f.End().Add(1)
	sm.files = append(sm.files, f)
	sm.byName[name] = f
	return f, nil
}

// LoadFile reads a file from disk, normalizes it (BOM, UTF-16, CRLF)
// and registers it.
func (sm *SourceMap) LoadFile(path string) (*File, error) {
	// #nosec G304 -- path is provided by the caller
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	src, flags, err := normalizeContent(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sm.AddFile(path, src, flags)
}

// AddVirtualFile registers in-memory content (tests, stdin, synthesized
// sources).
func (sm *SourceMap) AddVirtualFile(name, src string) (*File, error) {
	return sm.AddFile(name, src, FileVirtual)
}

// FileByName returns the file registered under name, if any.
func (sm *SourceMap) FileByName(name string) (*File, bool) {
	f, ok := sm.byName[normalizePath(name)]
	return f, ok
}

// Files returns the loaded files in insertion order. Read-only.
func (sm *SourceMap) Files() []*File {
	return sm.files
}

// FileFor resolves the file owning pos. Every position ever issued by
// this map resolves to exactly one file; anything else is a contract
// violation upstream.
func (sm *SourceMap) FileFor(pos BytePos) (*File, bool) {
	if !pos.IsValid() {
		return nil, false
	}
	// Bases are strictly increasing; binary search for the owning file.
	i := sort.Search(len(sm.files), func(i int) bool {
		return sm.files[i].End() >= pos
	})
	if i == len(sm.files) || !sm.files[i].ContainsPos(pos) {
		return nil, false
	}
	return sm.files[i], true
}

// LookupPosition resolves a global position to (file, line, column).
// Panics on positions outside every file.
func (sm *SourceMap) LookupPosition(pos BytePos) Position {
	f, ok := sm.FileFor(pos)
	if !ok {
		panic(fmt.Sprintf("position %d does not belong to any loaded file", pos))
	}
	lc := f.LineCol(pos)
	return Position{Filename: f.Name, Line: lc.Line, Col: lc.Col}
}

// SpanToText extracts the exact source text covered by span. The span
// must lie within a single file; dummy spans yield "".
func (sm *SourceMap) SpanToText(span Span) (string, bool) {
	if span.IsDummy() {
		return "", false
	}
	f, ok := sm.FileFor(span.Lo)
	if !ok || !f.ContainsPos(span.Hi) {
		return "", false
	}
	return f.Src[f.RelPos(span.Lo):f.RelPos(span.Hi)], true
}

// SpanPosition resolves both ends of a span at once.
func (sm *SourceMap) SpanPosition(span Span) (start, end Position) {
	return sm.LookupPosition(span.Lo), sm.LookupPosition(span.Hi)
}

func normalizePath(p string) string {
	// uniform representation in cross-platform diffs
	return filepath.ToSlash(filepath.Clean(p))
}
