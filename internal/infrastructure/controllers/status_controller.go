package controllers

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/fuzzkeeper/internal/domain/commands"
	"github.com/rios0rios0/fuzzkeeper/internal/domain/entities"
)

// StatusController handles the "status" session command.
type StatusController struct {
	command commands.Status
}

// NewStatusController creates a new StatusController.
func NewStatusController(command commands.Status) *StatusController {
	return &StatusController{command: command}
}

// GetBind returns the Cobra command metadata for the status controller.
func (it *StatusController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "status",
		Short: "Report the state of every campaign",
	}
}

func (it *StatusController) Execute(cmd *cobra.Command, _ []string) error {
	lines := it.command.Execute()

	var report strings.Builder
	fmt.Fprintf(&report, "Currently %d campaigns:\n", len(lines))
	for _, line := range lines {
		report.WriteString(line)
		report.WriteString("\n")
	}

	_, err := fmt.Fprint(cmd.OutOrStdout(), report.String())
	return err
}
