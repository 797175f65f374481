package controllers

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/fuzzkeeper/internal/domain/commands"
	"github.com/rios0rios0/fuzzkeeper/internal/domain/entities"
)

// ReposController handles the top-level "repos" command.
type ReposController struct {
	command commands.Repos
}

// NewReposController creates a new ReposController.
func NewReposController(command commands.Repos) *ReposController {
	return &ReposController{command: command}
}

// GetBind returns the Cobra command metadata for the repos controller.
func (it *ReposController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "repos",
		Short: "List the tracked repositories",
		Long:  "Print every record of the tracked repository list without starting anything.",
	}
}

func (it *ReposController) Execute(cmd *cobra.Command, _ []string) error {
	identities, err := it.command.Execute()
	if err != nil {
		return err
	}

	if len(identities) == 0 {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), "No tracked repositories")
		return err
	}

	var report strings.Builder
	for _, identity := range identities {
		report.WriteString(identity.String())
		report.WriteString("\n")
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), report.String())
	return err
}
