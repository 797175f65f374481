//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/fuzzkeeper/internal/domain/commands"
	"github.com/rios0rios0/fuzzkeeper/internal/domain/entities"
)

func newResumeCommand(f *fixture) *commands.ResumeCommand {
	return commands.NewResumeCommand(f.settings, f.registry, f.sync, f.supervisor)
}

func TestResumeCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should sync and start every tracked repository", func(t *testing.T) {
		t.Parallel()

		// given
		f := newFixture(t, identityNamed("medusa"), identityNamed("echidna"), identityNamed("slither"))
		f.settings.Resume.Concurrency = 2
		cmd := newResumeCommand(f)

		// when
		outcomes, err := cmd.Execute(context.Background())

		// then
		require.NoError(t, err)
		require.Len(t, outcomes, 3)
		for i, name := range []string{"medusa", "echidna", "slither"} {
			assert.Equal(t, name, outcomes[i].Name)
			require.NoError(t, outcomes[i].Err)
			assert.Positive(t, outcomes[i].PID)
		}
		assert.Len(t, f.supervisor.Snapshot(), 3)
		assert.Len(t, f.sync.Synced(), 3)
	})

	t.Run("should report running and failing repositories without stopping the others", func(t *testing.T) {
		t.Parallel()

		// given
		medusa := identityNamed("medusa")
		f := newFixture(t, medusa, identityNamed("echidna"), identityNamed("slither"))
		_, err := f.supervisor.Start(medusa, checkoutsDir+"/medusa", 10)
		require.NoError(t, err)
		f.sync.Errs = map[string]error{"echidna": errors.Join(entities.ErrSyncFailure, errors.New("auth"))}
		cmd := newResumeCommand(f)

		// when
		outcomes, err := cmd.Execute(context.Background())

		// then
		require.NoError(t, err)
		require.Len(t, outcomes, 3)
		require.ErrorIs(t, outcomes[0].Err, entities.ErrAlreadyRunning)
		require.ErrorIs(t, outcomes[1].Err, entities.ErrSyncFailure)
		require.NoError(t, outcomes[2].Err)
		assert.Len(t, f.launcher.SpawnCalls(), 2)
	})

	t.Run("should sync identities sharing a checkout one at a time", func(t *testing.T) {
		t.Parallel()

		// given
		proj := entities.RepoIdentity{URL: "https://github.com/crytic/proj.git"}
		projDev := entities.RepoIdentity{URL: "https://github.com/crytic/proj.git", Branch: "dev"}
		f := newFixture(t, proj, projDev, identityNamed("other"))
		f.settings.Resume.Concurrency = 4
		f.sync.Hold = 20 * time.Millisecond
		cmd := newResumeCommand(f)

		// when
		outcomes, err := cmd.Execute(context.Background())

		// then
		require.NoError(t, err)
		require.Len(t, outcomes, 3)
		assert.Equal(t, 1, f.sync.MaxInFlight("proj"))
		require.NoError(t, outcomes[0].Err)
		require.ErrorIs(t, outcomes[1].Err, entities.ErrAlreadyRunning)
		require.NoError(t, outcomes[2].Err)
		projSyncs := 0
		for _, identity := range f.sync.Synced() {
			if identity.Name() == "proj" {
				projSyncs++
			}
		}
		assert.Equal(t, 1, projSyncs)
	})

	t.Run("should return no outcomes when nothing is tracked", func(t *testing.T) {
		t.Parallel()

		// given
		f := newFixture(t)
		cmd := newResumeCommand(f)

		// when
		outcomes, err := cmd.Execute(context.Background())

		// then
		require.NoError(t, err)
		assert.Empty(t, outcomes)
	})

	t.Run("should stop when the context is cancelled", func(t *testing.T) {
		t.Parallel()

		// given
		f := newFixture(t, identityNamed("medusa"))
		cmd := newResumeCommand(f)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		// when
		_, err := cmd.Execute(ctx)

		// then
		require.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, f.launcher.SpawnCalls())
	})
}
