package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"helios/internal/diag"
	"helios/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	noteColor    = color.New(color.FgCyan, color.Bold)
	caretColor   = color.New(color.FgGreen)
)

// Pretty renders diagnostics human-readably. Call bag.Sort() first for
// source order. Each diagnostic prints as
//
//	<path>:<line>:<col>: <SEVERITY> <CODE>: <message>
//	    <source line>
//	    ^~~~~
//
// followed by indented notes when enabled. Dummy spans print without a
// location prefix.
func Pretty(w io.Writer, bag *diag.Bag, sm *source.SourceMap, opts PrettyOpts) {
	for _, d := range bag.Items() {
		prettyOne(w, d, sm, opts)
	}
	if n := bag.Dropped(); n > 0 {
		fmt.Fprintf(w, "... and %d duplicate or truncated findings\n", n)
	}
}

func prettyOne(w io.Writer, d diag.Diagnostic, sm *source.SourceMap, opts PrettyOpts) {
	writeHeader(w, d.Severity.String(), d.Code.String(), d.Primary, d.Message, sm, opts)
	if opts.Snippet {
		writeSnippet(w, d.Primary, sm, opts)
	}
	if opts.ShowNotes {
		for _, n := range d.Notes {
			writeHeader(w, "note", "", n.Span, n.Msg, sm, opts)
			if opts.Snippet {
				writeSnippet(w, n.Span, sm, opts)
			}
		}
	}
}

func writeHeader(w io.Writer, sev, code string, span source.Span, msg string, sm *source.SourceMap, opts PrettyOpts) {
	if f, ok := sm.FileFor(span.Lo); ok {
		lc := f.LineCol(span.Lo)
		fmt.Fprintf(w, "%s:%d:%d: ", displayPath(f.Name, opts.PathMode), lc.Line, lc.Col)
	}
	label := sev
	if code != "" {
		label += " " + code
	}
	if opts.Color {
		label = severityColor(sev).Sprint(label)
	}
	fmt.Fprintf(w, "%s: %s\n", label, msg)
}

func severityColor(sev string) *color.Color {
	switch sev {
	case diag.SevError.String():
		return errorColor
	case diag.SevWarning.String():
		return warningColor
	}
	return noteColor
}

// writeSnippet prints the first line covered by span with a caret
// underline. The underline is sized in display cells so wide and
// multi-byte characters stay aligned.
func writeSnippet(w io.Writer, span source.Span, sm *source.SourceMap, opts PrettyOpts) {
	f, ok := sm.FileFor(span.Lo)
	if !ok {
		return
	}
	lc := f.LineCol(span.Lo)
	line := f.Line(lc.Line)
	if line == "" && span.Empty() {
		return
	}

	fmt.Fprintf(w, "    %s\n", line)

	// Byte column -> display column for the caret offset.
	head := line
	if int(lc.Col-1) <= len(line) {
		head = line[:lc.Col-1]
	}
	pad := strings.Repeat(" ", runewidth.StringWidth(head))

	// Underline covers the span portion that stays on this line.
	covered := span.Len()
	rest := uint32(len(line)) - uint32(len(head))
	if covered > rest {
		covered = rest
	}
	underline := "^"
	if covered > 1 {
		tail := head + line[len(head):len(head)+int(covered)]
		width := runewidth.StringWidth(tail) - runewidth.StringWidth(head)
		if width > 1 {
			underline += strings.Repeat("~", width-1)
		}
	}
	if opts.Color {
		underline = caretColor.Sprint(underline)
	}
	fmt.Fprintf(w, "    %s%s\n", pad, underline)
}
