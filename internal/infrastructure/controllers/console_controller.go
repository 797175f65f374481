package controllers

import (
	"bufio"
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/fuzzkeeper/internal/domain/campaigns"
	"github.com/rios0rios0/fuzzkeeper/internal/domain/entities"
)

const exitCommand = "exit"

// SessionControllers are the commands available inside a console session.
type SessionControllers []entities.Controller

// NewSessionControllers aggregates the console session controllers.
func NewSessionControllers(
	startController *StartController,
	pauseController *PauseController,
	statusController *StatusController,
	archiveController *ArchiveController,
	resumeController *ResumeController,
) SessionControllers {
	return SessionControllers{
		startController,
		pauseController,
		statusController,
		archiveController,
		resumeController,
	}
}

// ConsoleController runs the interactive operator session: every input line
// is dispatched to the session commands and the reply written back.
type ConsoleController struct {
	session    SessionControllers
	supervisor *campaigns.Supervisor
}

// NewConsoleController creates a new ConsoleController.
func NewConsoleController(session SessionControllers, supervisor *campaigns.Supervisor) *ConsoleController {
	return &ConsoleController{session: session, supervisor: supervisor}
}

// GetBind returns the Cobra command metadata for the console controller.
func (it *ConsoleController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "console",
		Short: "Supervise fuzzing campaigns interactively",
		Long: `Read operator commands from standard input, one per line:

  start <url> [branch] [--timeout seconds]
  pause <name>
  status
  archive <name>
  resume
  help
  exit

Campaigns keep running after the session ends.`,
	}
}

// Execute reads commands until "exit" or end of input.
func (it *ConsoleController) Execute(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	scanner := bufio.NewScanner(cmd.InOrStdin())

	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if fields[0] == exitCommand {
			break
		}

		session := it.newSessionCommand(cmd)
		session.SetArgs(fields)
		if err := session.ExecuteContext(cmd.Context()); err != nil {
			logger.Debugf("Command %q failed: %v", fields[0], err)
			if _, writeErr := fmt.Fprintf(out, "Error: %v\n", err); writeErr != nil {
				return writeErr
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read console input: %w", err)
	}

	if running := it.countRunning(); running > 0 {
		logger.Warnf("Leaving %d campaigns running", running)
	}
	return nil
}

// newSessionCommand builds a fresh command tree so no flag value outlives its line.
func (it *ConsoleController) newSessionCommand(parent *cobra.Command) *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	root := &cobra.Command{
		Use:           "fuzzkeeper",
		Short:         "Fuzzing campaign console (type exit to leave)",
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	root.SetOut(parent.OutOrStdout())
	root.SetErr(parent.OutOrStdout())

	for _, controller := range it.session {
		root.AddCommand(NewCobraCommand(controller))
	}

	return root
}

func (it *ConsoleController) countRunning() int {
	running := 0
	for _, state := range it.supervisor.Snapshot() {
		if _, ok := state.(entities.RunningState); ok {
			running++
		}
	}
	return running
}
