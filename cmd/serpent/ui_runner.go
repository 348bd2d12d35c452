package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"serpent/internal/diag"
	"serpent/internal/ui"
	"serpent/internal/validate"
)

type checkOutcome struct {
	bags []*diag.Bag
	err  error
}

// runAllWithUI runs validate.RunAllProgress while a Bubble Tea program draws
// per-unit status on stdout.
func runAllWithUI(ctx context.Context, title string, work []validate.Unit, opts validate.Options, jobs int) ([]*diag.Bag, error) {
	paths := make([]string, len(work))
	for i, u := range work {
		paths[i] = u.Path
	}
	events := make(chan ui.Event, 256)
	outcomeCh := make(chan checkOutcome, 1)

	go func() {
		bags, err := validate.RunAllProgress(ctx, work, opts, jobs, func(i int, bag *diag.Bag) {
			events <- ui.Event{Index: i, Status: ui.StatusOf(bag)}
		})
		outcomeCh <- checkOutcome{bags: bags, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, paths, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	// если программа упала раньше времени, воркеры не должны застрять на канале
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.bags, uiErr
	}
	return outcome.bags, outcome.err
}
