package controllers

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/fuzzkeeper/internal/domain/commands"
	"github.com/rios0rios0/fuzzkeeper/internal/domain/entities"
)

var errArchiveUsage = errors.New("usage: archive <name>")

// ArchiveController handles the "archive" session command.
type ArchiveController struct {
	command commands.Archive
}

// NewArchiveController creates a new ArchiveController.
func NewArchiveController(command commands.Archive) *ArchiveController {
	return &ArchiveController{command: command}
}

// GetBind returns the Cobra command metadata for the archive controller.
func (it *ArchiveController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "archive <name>",
		Short: "Stop tracking a repository",
		Long: `Stop the campaign if it is running, remove the repository from the tracked
list (recording it in archive/archive.txt) and move its checkout into archive/.`,
	}
}

func (it *ArchiveController) Execute(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errArchiveUsage
	}

	if err := it.command.Execute(args[0]); err != nil {
		return err
	}

	_, err := fmt.Fprintf(cmd.OutOrStdout(), "Archived %s\n", args[0])
	return err
}
