package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register the tracked repository registry
	if err := container.Provide(NewRepoRegistryFromList); err != nil {
		return err
	}

	// Register command constructors
	constructors := []any{
		NewStartCommand,
		NewPauseCommand,
		NewStatusCommand,
		NewArchiveCommand,
		NewResumeCommand,
		NewReposCommand,
	}
	for _, constructor := range constructors {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	// Bind interfaces to implementations
	bindings := []any{
		func(impl *StartCommand) Start { return impl },
		func(impl *PauseCommand) Pause { return impl },
		func(impl *StatusCommand) Status { return impl },
		func(impl *ArchiveCommand) Archive { return impl },
		func(impl *ResumeCommand) Resume { return impl },
		func(impl *ReposCommand) Repos { return impl },
	}
	for _, binding := range bindings {
		if err := container.Provide(binding); err != nil {
			return err
		}
	}

	return nil
}
