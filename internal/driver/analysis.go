package driver

import (
	"strings"

	"fortio.org/safecast"

	"helios/internal/diag"
	"helios/internal/session"
	"helios/internal/source"
)

// Analysis inspects one loaded file and reports findings through the
// session's diagnostic bag.
type Analysis func(*session.Session, *source.File)

// longLineLimit is the byte length past which a line is flagged.
const longLineLimit = 500

// DefaultAnalyses returns the analyses a plain check run executes.
func DefaultAnalyses() []Analysis {
	return []Analysis{SourceHygiene}
}

// SourceHygiene reports findings about the raw text of a file: encoding
// artifacts normalized during load, empty inputs, missing version
// pragma and unreasonably long lines.
func SourceHygiene(s *session.Session, f *source.File) {
	fileSpan := source.Span{Lo: f.Base, Hi: f.End()}
	startSpan := source.Span{Lo: f.Base, Hi: f.Base}

	if f.Flags&source.FileHadBOM != 0 {
		s.Diags.Emit(diag.New(diag.SevNote, diag.SrcHadBOM, startSpan,
			"file starts with a UTF-8 byte order mark; it was stripped"))
	}
	if f.Flags&source.FileTranscodedUTF16 != 0 {
		s.Diags.Emit(diag.New(diag.SevNote, diag.SrcUTF16Source, startSpan,
			"file was transcoded from UTF-16; prefer UTF-8 sources"))
	}
	if f.Flags&source.FileNormalizedCRLF != 0 {
		s.Diags.Emit(diag.New(diag.SevNote, diag.SrcCRLF, startSpan,
			"file uses CRLF line endings; they were normalized to LF"))
	}

	if strings.TrimSpace(f.Src) == "" {
		s.Diags.Emit(diag.NewWarning(diag.SrcEmptyFile, fileSpan,
			"file contains no source text"))
		return
	}

	if _, ok := pragmaSpan(f); !ok {
		s.Diags.Emit(diag.NewWarning(diag.SrcNoPragma, startSpan,
			"missing `pragma solidity` version pragma"))
	}

	lineCount, err := safecast.Conv[uint32](f.LineCount())
	if err != nil {
		lineCount = 0
	}
	for n := uint32(1); n <= lineCount; n++ {
		line := f.Line(n)
		if len(line) <= longLineLimit {
			continue
		}
		lo := f.Base.Add(f.LineStarts[n-1])
		hi := lo.Add(uint32(len(line)))
		s.Diags.Emit(diag.NewWarning(diag.SrcLongLine, source.NewSpan(lo, hi),
			"line is longer than 500 bytes"))
	}
}

// pragmaSpan locates the first `pragma solidity` directive.
func pragmaSpan(f *source.File) (source.Span, bool) {
	const needle = "pragma solidity"
	idx := strings.Index(f.Src, needle)
	if idx < 0 {
		return source.DummySpan, false
	}
	off, err := safecast.Conv[uint32](idx)
	if err != nil {
		return source.DummySpan, false
	}
	lo := f.Base.Add(off)
	return source.NewSpan(lo, lo.Add(uint32(len(needle)))), true
}
