package app

import (
	"fmt"

	"github.com/cristianoliveira/inbox/internal/colors"
	"github.com/cristianoliveira/inbox/internal/presenter"
	"github.com/cristianoliveira/inbox/internal/tui/state"
)

// Client defines dependencies needed by the tui command.
type Client interface {
	CreateModel(p *presenter.Presenter, source state.Source, opts state.Options) *state.Model
	RunProgram(model *state.Model) error
}

// DefaultClient is the adapter used by CLI wiring.
type DefaultClient struct {
	programRunner ProgramRunner
}

// NewDefaultClient creates a default TUI client adapter.
// If programRunner is nil, a DefaultProgramRunner will be used.
func NewDefaultClient(programRunner ProgramRunner) *DefaultClient {
	if programRunner == nil {
		programRunner = NewDefaultProgramRunner()
	}
	return &DefaultClient{programRunner: programRunner}
}

// CreateModel builds the list model.
func (d *DefaultClient) CreateModel(p *presenter.Presenter, source state.Source, opts state.Options) *state.Model {
	return state.NewModel(p, source, opts)
}

// RunProgram runs the model until the user quits and then releases its
// store subscription.
func (d *DefaultClient) RunProgram(model *state.Model) error {
	defer model.Close()
	if err := d.programRunner.Run(model); err != nil {
		colors.Error(fmt.Sprintf("Error running TUI: %v", err))
		return err
	}
	return nil
}
