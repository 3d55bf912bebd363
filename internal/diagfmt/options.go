// Package diagfmt renders diagnostics for humans (annotated source
// with carets) and machines (JSON). It consumes the structured data of
// internal/diag and the position resolution of internal/source without
// adding any state of its own.
package diagfmt

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto keeps short or relative paths as-is and shortens
	// long absolute ones to their base name.
	PathModeAuto PathMode = iota
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color     bool
	PathMode  PathMode
	ShowNotes bool
	// Snippet controls whether the offending source line is printed
	// under each diagnostic.
	Snippet bool
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	IncludePositions bool // add line/col next to byte offsets
	PathMode         PathMode
	Max              int // output truncation; does not affect the bag
	IncludeNotes     bool
}
