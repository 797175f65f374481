//go:build unit

package commands_test

import (
	"testing"
	"time"

	"github.com/rios0rios0/fuzzkeeper/internal/domain/campaigns"
	"github.com/rios0rios0/fuzzkeeper/internal/domain/entities"
	builders "github.com/rios0rios0/fuzzkeeper/test/domain/entitybuilders"
	doubles "github.com/rios0rios0/fuzzkeeper/test/infrastructure/repositorydoubles"
)

const (
	eventuallyWait = 2 * time.Second
	eventuallyTick = 5 * time.Millisecond
	checkoutsDir   = "/srv/fuzzkeeper/repos"
)

// fixture wires the commands to in-memory collaborators and a real supervisor.
type fixture struct {
	settings   *entities.Settings
	registry   *entities.RepoRegistry
	repoList   *doubles.SpyRepoListRepository
	sync       *doubles.StubSyncRepository
	workspace  *doubles.SpyWorkspaceRepository
	launcher   *doubles.SpyProcessLauncher
	supervisor *campaigns.Supervisor
}

func newFixture(t *testing.T, tracked ...entities.RepoIdentity) *fixture {
	t.Helper()

	launcher := &doubles.SpyProcessLauncher{}
	t.Cleanup(launcher.ReleaseAll)

	return &fixture{
		settings:   entities.DefaultSettings(),
		registry:   entities.NewRepoRegistry(tracked...),
		repoList:   &doubles.SpyRepoListRepository{Records: append([]entities.RepoIdentity(nil), tracked...)},
		sync:       &doubles.StubSyncRepository{BaseDir: checkoutsDir},
		workspace:  &doubles.SpyWorkspaceRepository{BaseDir: checkoutsDir},
		launcher:   launcher,
		supervisor: campaigns.NewSupervisor(launcher),
	}
}

func identityNamed(name string) entities.RepoIdentity {
	return builders.NewRepoIdentityBuilder().WithName(name).BuildIdentity()
}
