package commands

import (
	"github.com/rios0rios0/fuzzkeeper/internal/domain/campaigns"
)

// Pause is the interface for the pause command.
type Pause interface {
	Execute(name string) error
}

// PauseCommand interrupts a running campaign. The repository stays tracked,
// so a later start resumes it.
type PauseCommand struct {
	supervisor *campaigns.Supervisor
}

// NewPauseCommand creates a new PauseCommand.
func NewPauseCommand(supervisor *campaigns.Supervisor) *PauseCommand {
	return &PauseCommand{supervisor: supervisor}
}

func (it *PauseCommand) Execute(name string) error {
	return it.supervisor.Stop(name)
}
