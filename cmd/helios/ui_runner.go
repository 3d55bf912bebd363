package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"helios/internal/driver"
	"helios/internal/ui"
)

type checkOutcome struct {
	results []driver.FileResult
	err     error
}

// runCheckDirWithUI runs a directory check in the background while a
// Bubble Tea program renders its progress events.
func runCheckDirWithUI(ctx context.Context, title, dir string, files []string, opts driver.Options) ([]driver.FileResult, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan checkOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = driver.ChannelSink{Ch: events}
		results, err := driver.CheckDir(ctx, dir, optsCopy)
		outcomeCh <- checkOutcome{results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
