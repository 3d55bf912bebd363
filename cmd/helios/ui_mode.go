package main

import (
	"fmt"
	"os"
	"strings"
)

// progressMode controls the per-file progress view of directory checks.
// Auto enables it only when stdout is a terminal, so piped and CI runs
// get plain diagnostic output.
type progressMode string

const (
	progressAuto   progressMode = "auto"
	progressAlways progressMode = "on"
	progressNever  progressMode = "off"
)

func parseProgressMode(value string) (progressMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return progressAuto, nil
	case "on":
		return progressAlways, nil
	case "off":
		return progressNever, nil
	default:
		return "", fmt.Errorf("--ui must be auto, on or off, got %q", value)
	}
}

// wantProgressUI decides whether the check run drives the interactive
// progress view instead of printing results as they complete.
func wantProgressUI(mode progressMode) bool {
	switch mode {
	case progressAlways:
		return true
	case progressNever:
		return false
	default:
		return isTerminal(os.Stdout)
	}
}
