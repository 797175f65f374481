package controllers

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/fuzzkeeper/internal/domain/commands"
	"github.com/rios0rios0/fuzzkeeper/internal/domain/entities"
)

var errStartUsage = errors.New("usage: start <url> [branch] [--timeout seconds]")

// StartController handles the "start" session command.
type StartController struct {
	command commands.Start
}

// NewStartController creates a new StartController.
func NewStartController(command commands.Start) *StartController {
	return &StartController{command: command}
}

// GetBind returns the Cobra command metadata for the start controller.
func (it *StartController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "start <url> [branch]",
		Short: "Track a repository and start its fuzzing campaign",
		Long: `Track a repository (url, or url:branch) and start its fuzzing campaign.

The repository is appended to the tracked list when it is new, then cloned
or pulled, its dependencies installed, and the fuzzer started in its checkout.`,
	}
}

// Execute starts the campaign and replies with its pid.
func (it *StartController) Execute(cmd *cobra.Command, args []string) error {
	if len(args) == 0 || len(args) > 2 {
		return errStartUsage
	}

	timeout, _ := cmd.Flags().GetInt("timeout")
	opts := commands.StartOptions{URL: args[0], TimeoutSeconds: timeout}
	if len(args) == 2 {
		opts.Branch = args[1]
	}

	result, err := it.command.Execute(cmd.Context(), opts)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Fuzzing campaign running for %s (PID: %d)\n", result.Name, result.PID)
	return err
}

// AddFlags adds the start-specific flags to the given Cobra command.
func (it *StartController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Int("timeout", 0, "Campaign timeout in seconds (default: fuzzer.timeout from the config)")
}
