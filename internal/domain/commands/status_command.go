package commands

import (
	"sort"

	"github.com/rios0rios0/fuzzkeeper/internal/domain/campaigns"
	"github.com/rios0rios0/fuzzkeeper/internal/domain/entities"
)

const notRunning = "Not running"

// Status is the interface for the status command.
type Status interface {
	Execute() []string
}

// StatusCommand builds the status report: one line per tracked repository in
// registry order, followed by campaigns whose repository is no longer tracked.
type StatusCommand struct {
	registry   *entities.RepoRegistry
	supervisor *campaigns.Supervisor
}

// NewStatusCommand creates a new StatusCommand.
func NewStatusCommand(registry *entities.RepoRegistry, supervisor *campaigns.Supervisor) *StatusCommand {
	return &StatusCommand{registry: registry, supervisor: supervisor}
}

func (it *StatusCommand) Execute() []string {
	snapshot := it.supervisor.Snapshot()
	tracked := it.registry.List()

	lines := make([]string, 0, len(tracked)+len(snapshot))
	seen := make(map[string]bool, len(tracked))
	for _, identity := range tracked {
		name := identity.Name()
		if seen[name] {
			continue
		}
		seen[name] = true

		if state, ok := snapshot[name]; ok {
			lines = append(lines, entities.FormatStatusLine(name, state))
		} else {
			lines = append(lines, name+": "+notRunning)
		}
	}

	var untracked []string
	for name := range snapshot {
		if !seen[name] {
			untracked = append(untracked, name)
		}
	}
	sort.Strings(untracked)
	for _, name := range untracked {
		lines = append(lines, entities.FormatStatusLine(name, snapshot[name]))
	}

	return lines
}
