package main

import (
	"io"
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/fuzzkeeper/internal"
	"github.com/rios0rios0/fuzzkeeper/internal/infrastructure/controllers"
)

func buildRootCommand() *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "fuzzkeeper",
		Short: "Supervisor for long-running fuzzing campaigns",
		Long: `Keep one fuzzing campaign per tracked repository running, and report
their live status to operators.

Usage modes:
  fuzzkeeper console   Interactive session (start, pause, status, archive, resume)
  fuzzkeeper repos     List the tracked repositories

The configuration file is read from $FUZZKEEPER_CONFIG or auto-detected
(fuzzkeeper.yaml, fuzzkeeper.toml, ...); defaults apply when none exists.`,
		SilenceUsage: true,
		PersistentPreRun: func(command *cobra.Command, _ []string) {
			if verbose, _ := command.Flags().GetBool("verbose"); verbose {
				logger.SetLevel(logger.DebugLevel)
			}
		},
		RunE: func(command *cobra.Command, _ []string) error {
			return command.Help()
		},
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		rootCmd.AddCommand(controllers.NewCobraCommand(controller))
	}
}

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger.SetOutput(stderr)
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	// Inject controllers via DIG
	appContext, err := injectAppContext()
	if err != nil {
		logger.Errorf("Failed to initialize fuzzkeeper: %s", err)
		return 1
	}

	cobraRoot := buildRootCommand()
	addSubcommands(cobraRoot, appContext)
	cobraRoot.SetArgs(args[1:])
	cobraRoot.SetIn(stdin)
	cobraRoot.SetOut(stdout)
	cobraRoot.SetErr(stderr)

	if err = cobraRoot.Execute(); err != nil {
		logger.Errorf("Error executing 'fuzzkeeper': %s", err)
		return 1
	}
	return 0
}
