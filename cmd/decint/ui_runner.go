package main

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"decint/internal/calc"
	"decint/internal/ui"
)

type batchOutcome struct {
	results []calc.Result
	err     error
}

// evalWithUI evaluates lines while a progress view is drawn on w.
func evalWithUI(ctx context.Context, title string, lines []calc.Line, jobs int, w io.Writer) ([]calc.Result, error) {
	events := make(chan calc.Result, 256)
	outcomeCh := make(chan batchOutcome, 1)

	go func() {
		res, err := calc.EvalAllWith(ctx, lines, calc.Options{Jobs: jobs, Progress: events})
		outcomeCh <- batchOutcome{results: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, len(lines), events)
	program := tea.NewProgram(model, tea.WithOutput(w), tea.WithInput(nil))
	_, uiErr := program.Run()
	// a UI that quit early must not stall the workers
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
