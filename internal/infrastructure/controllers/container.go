package controllers

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/fuzzkeeper/internal/domain/entities"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	constructors := []any{
		NewStartController,
		NewPauseController,
		NewStatusController,
		NewArchiveController,
		NewResumeController,
		NewSessionControllers,
		NewConsoleController,
		NewReposController,
		NewControllers,
	}
	for _, constructor := range constructors {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	return nil
}

// NewControllers aggregates the top-level controllers into a slice for the AppInternal.
func NewControllers(
	consoleController *ConsoleController,
	reposController *ReposController,
) *[]entities.Controller {
	return &[]entities.Controller{
		consoleController,
		reposController,
	}
}
