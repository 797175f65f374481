package campaigns

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/fuzzkeeper/internal/domain/repositories"
)

// RegisterProviders registers the campaign supervisor with the DIG container.
func RegisterProviders(container *dig.Container) error {
	return container.Provide(func(launcher repositories.ProcessLauncher) *Supervisor {
		return NewSupervisor(launcher, WithExitObserver(ReportExit))
	})
}
