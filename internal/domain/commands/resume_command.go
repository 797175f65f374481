package commands

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/rios0rios0/fuzzkeeper/internal/domain/campaigns"
	"github.com/rios0rios0/fuzzkeeper/internal/domain/entities"
	"github.com/rios0rios0/fuzzkeeper/internal/domain/repositories"
)

// Resume is the interface for the resume command.
type Resume interface {
	Execute(ctx context.Context) ([]ResumeOutcome, error)
}

// ResumeOutcome is the result of resuming one tracked repository.
// Err is nil and PID is set when the campaign was started.
type ResumeOutcome struct {
	Name string
	PID  int
	Err  error
}

// ResumeCommand syncs and starts every tracked repository that is not running.
type ResumeCommand struct {
	settings   *entities.Settings
	registry   *entities.RepoRegistry
	sync       repositories.SyncRepository
	supervisor *campaigns.Supervisor
}

// NewResumeCommand creates a new ResumeCommand.
func NewResumeCommand(
	settings *entities.Settings,
	registry *entities.RepoRegistry,
	sync repositories.SyncRepository,
	supervisor *campaigns.Supervisor,
) *ResumeCommand {
	return &ResumeCommand{
		settings:   settings,
		registry:   registry,
		sync:       sync,
		supervisor: supervisor,
	}
}

// Execute resumes repositories concurrently, at most resume.concurrency at a
// time. Identities sharing a name share one checkout, so they are resumed one
// after another by the same job. A failing repository does not stop the
// others; outcomes keep registry order.
func (it *ResumeCommand) Execute(ctx context.Context) ([]ResumeOutcome, error) {
	tracked := it.registry.List()
	outcomes := make([]ResumeOutcome, len(tracked))

	group, groupCtx := errgroup.WithContext(ctx)
	if it.settings.Resume.Concurrency > 0 {
		group.SetLimit(it.settings.Resume.Concurrency)
	}

	for _, indexes := range groupByName(tracked) {
		group.Go(func() error {
			for _, i := range indexes {
				if err := groupCtx.Err(); err != nil {
					return err
				}

				identity := tracked[i]
				pid, err := startCampaign(groupCtx, it.sync, it.supervisor, identity, it.settings.Fuzzer.Timeout)
				outcomes[i] = ResumeOutcome{Name: identity.Name(), PID: pid, Err: err}
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return outcomes, err
	}
	return outcomes, nil
}

// groupByName returns the indexes of tracked per name, in first-seen order.
func groupByName(tracked []entities.RepoIdentity) [][]int {
	var groups [][]int
	position := make(map[string]int, len(tracked))
	for i, identity := range tracked {
		name := identity.Name()
		if at, ok := position[name]; ok {
			groups[at] = append(groups[at], i)
			continue
		}
		position[name] = len(groups)
		groups = append(groups, []int{i})
	}
	return groups
}
