package commands

import (
	"context"
	"errors"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/fuzzkeeper/internal/domain/campaigns"
	"github.com/rios0rios0/fuzzkeeper/internal/domain/entities"
	"github.com/rios0rios0/fuzzkeeper/internal/domain/repositories"
)

// Start is the interface for the start command.
type Start interface {
	Execute(ctx context.Context, opts StartOptions) (StartResult, error)
}

// StartOptions holds the operator input of a start request.
type StartOptions struct {
	URL    string // "url" or "url:branch" when Branch is empty
	Branch string
	// TimeoutSeconds overrides fuzzer.timeout when positive.
	TimeoutSeconds int
}

// StartResult identifies the campaign that was started.
type StartResult struct {
	Name string
	PID  int
}

// StartCommand tracks a repository, syncs its checkout and starts its campaign.
type StartCommand struct {
	settings   *entities.Settings
	registry   *entities.RepoRegistry
	repoList   repositories.RepoListRepository
	sync       repositories.SyncRepository
	supervisor *campaigns.Supervisor
}

// NewStartCommand creates a new StartCommand.
func NewStartCommand(
	settings *entities.Settings,
	registry *entities.RepoRegistry,
	repoList repositories.RepoListRepository,
	sync repositories.SyncRepository,
	supervisor *campaigns.Supervisor,
) *StartCommand {
	return &StartCommand{
		settings:   settings,
		registry:   registry,
		repoList:   repoList,
		sync:       sync,
		supervisor: supervisor,
	}
}

// Execute registers the repository when it is new, then syncs and starts it.
func (it *StartCommand) Execute(ctx context.Context, opts StartOptions) (StartResult, error) {
	identity, err := identityFromOptions(opts)
	if err != nil {
		return StartResult{}, err
	}

	if err = it.track(identity); err != nil {
		return StartResult{}, err
	}

	timeout := it.settings.Fuzzer.Timeout
	if opts.TimeoutSeconds > 0 {
		timeout = opts.TimeoutSeconds
	}

	pid, err := startCampaign(ctx, it.sync, it.supervisor, identity, timeout)
	if err != nil {
		return StartResult{}, err
	}

	return StartResult{Name: identity.Name(), PID: pid}, nil
}

// track adds identity to the registry and persists it when it was not tracked yet.
func (it *StartCommand) track(identity entities.RepoIdentity) error {
	if !it.registry.Add(identity) {
		return nil
	}

	if err := it.repoList.Append(identity); err != nil {
		it.registry.Remove(identity)
		return err
	}

	logger.Infof("Now tracking %s", identity)
	return nil
}

func identityFromOptions(opts StartOptions) (entities.RepoIdentity, error) {
	if opts.Branch == "" {
		return entities.ParseRepoIdentity(opts.URL)
	}
	return entities.NewRepoIdentity(opts.URL, opts.Branch)
}

// startCampaign syncs the checkout and hands it to the supervisor. A running
// campaign is rejected before syncing so its checkout is never pulled under it.
func startCampaign(
	ctx context.Context,
	sync repositories.SyncRepository,
	supervisor *campaigns.Supervisor,
	identity entities.RepoIdentity,
	timeoutSeconds int,
) (int, error) {
	name := identity.Name()

	state, err := supervisor.State(name)
	if err != nil && !errors.Is(err, entities.ErrNotFound) {
		return 0, err
	}
	if running, ok := state.(entities.RunningState); ok {
		return 0, fmt.Errorf("%w: %s (PID: %d)", entities.ErrAlreadyRunning, name, running.PID)
	}

	workingDir, err := sync.Sync(ctx, identity)
	if err != nil {
		return 0, err
	}

	return supervisor.Start(identity, workingDir, timeoutSeconds)
}
