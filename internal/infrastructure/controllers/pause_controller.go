package controllers

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/fuzzkeeper/internal/domain/commands"
	"github.com/rios0rios0/fuzzkeeper/internal/domain/entities"
)

var errPauseUsage = errors.New("usage: pause <name>")

// PauseController handles the "pause" session command.
type PauseController struct {
	command commands.Pause
}

// NewPauseController creates a new PauseController.
func NewPauseController(command commands.Pause) *PauseController {
	return &PauseController{command: command}
}

// GetBind returns the Cobra command metadata for the pause controller.
func (it *PauseController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "pause <name>",
		Short: "Interrupt a running campaign",
		Long:  "Send SIGINT to a running campaign. The repository stays tracked and can be started again.",
	}
}

func (it *PauseController) Execute(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errPauseUsage
	}

	if err := it.command.Execute(args[0]); err != nil {
		return err
	}

	_, err := fmt.Fprintf(cmd.OutOrStdout(), "Paused %s\n", args[0])
	return err
}
