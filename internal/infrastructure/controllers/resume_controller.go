package controllers

import (
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/fuzzkeeper/internal/domain/commands"
	"github.com/rios0rios0/fuzzkeeper/internal/domain/entities"
)

// ResumeController handles the "resume" session command.
type ResumeController struct {
	command commands.Resume
}

// NewResumeController creates a new ResumeController.
func NewResumeController(command commands.Resume) *ResumeController {
	return &ResumeController{command: command}
}

// GetBind returns the Cobra command metadata for the resume controller.
func (it *ResumeController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "resume",
		Short: "Sync and start every tracked repository that is not running",
	}
}

func (it *ResumeController) Execute(cmd *cobra.Command, _ []string) error {
	outcomes, err := it.command.Execute(cmd.Context())
	if err != nil {
		return err
	}

	var report strings.Builder
	started := 0
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			logger.Errorf("Failed to resume %s: %v", outcome.Name, outcome.Err)
			fmt.Fprintf(&report, "Could not resume %s: %v\n", outcome.Name, outcome.Err)
			continue
		}
		started++
		fmt.Fprintf(&report, "Fuzzing campaign running for %s (PID: %d)\n", outcome.Name, outcome.PID)
	}
	fmt.Fprintf(&report, "Resumed %d of %d campaigns\n", started, len(outcomes))

	_, err = fmt.Fprint(cmd.OutOrStdout(), report.String())
	return err
}
