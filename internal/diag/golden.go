package diag

import (
	"fmt"
	"sort"
	"strings"

	"helios/internal/source"
)

type goldenDiagnostic struct {
	Severity string
	Code     string
	Path     string
	Line     uint32
	Column   uint32
	Message  string
}

// FormatGoldenDiagnostics renders diagnostics into a stable,
// single-line-per-entry representation suitable for golden files and
// test assertions. Entries are sorted deterministically.
func FormatGoldenDiagnostics(diags []Diagnostic, sm *source.SourceMap, includeNotes bool) string {
	if sm == nil || len(diags) == 0 {
		return ""
	}

	rendered := make([]goldenDiagnostic, 0, len(diags))
	for _, d := range diags {
		rendered = append(rendered, renderGolden(d.Severity.String(), d.Code.String(), d.Primary, d.Message, sm))
		if includeNotes {
			for _, n := range d.Notes {
				rendered = append(rendered, renderGolden("NOTE", d.Code.String(), n.Span, n.Msg, sm))
			}
		}
	}

	sort.SliceStable(rendered, func(i, j int) bool {
		di, dj := rendered[i], rendered[j]
		if di.Path != dj.Path {
			return di.Path < dj.Path
		}
		if di.Line != dj.Line {
			return di.Line < dj.Line
		}
		if di.Column != dj.Column {
			return di.Column < dj.Column
		}
		return di.Message < dj.Message
	})

	var sb strings.Builder
	for _, r := range rendered {
		fmt.Fprintf(&sb, "%s:%d:%d: %s %s: %s\n", r.Path, r.Line, r.Column, r.Severity, r.Code, r.Message)
	}
	return sb.String()
}

func renderGolden(sev, code string, span source.Span, msg string, sm *source.SourceMap) goldenDiagnostic {
	g := goldenDiagnostic{
		Severity: sev,
		Code:     code,
		Path:     "<unknown>",
		Message:  msg,
	}
	if span.IsDummy() {
		return g
	}
	if f, ok := sm.FileFor(span.Lo); ok {
		lc := f.LineCol(span.Lo)
		g.Path = f.Name
		g.Line = lc.Line
		g.Column = lc.Col
	}
	return g
}
