package diagfmt

import (
	"os"
	"path/filepath"
)

// displayPath formats a file name for output according to mode.
func displayPath(name string, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		if abs, err := filepath.Abs(name); err == nil {
			return filepath.ToSlash(abs)
		}
		return name

	case PathModeRelative:
		wd, err := os.Getwd()
		if err != nil {
			return name
		}
		if rel, err := filepath.Rel(wd, name); err == nil {
			return filepath.ToSlash(rel)
		}
		return name

	case PathModeBasename:
		return filepath.Base(name)

	default:
		// Auto: short or relative paths as-is, long absolute ones by
		// base name.
		if len(name) < 40 || !filepath.IsAbs(name) {
			return name
		}
		return filepath.Base(name)
	}
}
