// Package version records build metadata for the helios CLI.
// The variables can be overridden at build time via -ldflags.
package version

import (
	"strings"

	"github.com/fatih/color"
)

var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var componentColors = []*color.Color{
	color.New(color.FgYellow, color.Bold),
	color.New(color.FgGreen, color.Bold),
	color.New(color.FgBlue, color.Bold),
}

// Colorized renders Version with the major, minor and patch components
// highlighted. Versions that are not dotted triples come back unchanged.
func Colorized() string {
	rest := ""
	core := Version
	if i := strings.IndexAny(core, "-+"); i >= 0 {
		core, rest = core[:i], core[i:]
	}
	parts := strings.Split(core, ".")
	if len(parts) != len(componentColors) {
		return Version
	}
	for i, p := range parts {
		parts[i] = componentColors[i].Sprint(p)
	}
	return strings.Join(parts, ".") + rest
}
