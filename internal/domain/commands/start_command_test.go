//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/fuzzkeeper/internal/domain/commands"
	"github.com/rios0rios0/fuzzkeeper/internal/domain/entities"
	doubles "github.com/rios0rios0/fuzzkeeper/test/infrastructure/repositorydoubles"
)

func newStartCommand(f *fixture) *commands.StartCommand {
	return commands.NewStartCommand(f.settings, f.registry, f.repoList, f.sync, f.supervisor)
}

func TestStartCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should track, persist, sync and start a new repository", func(t *testing.T) {
		t.Parallel()

		// given
		f := newFixture(t)
		cmd := newStartCommand(f)

		// when
		result, err := cmd.Execute(context.Background(), commands.StartOptions{
			URL: "https://github.com/crytic/medusa.git", Branch: "dev",
		})

		// then
		require.NoError(t, err)
		assert.Equal(t, commands.StartResult{Name: "medusa", PID: 1000}, result)
		expected := entities.RepoIdentity{URL: "https://github.com/crytic/medusa.git", Branch: "dev"}
		assert.Equal(t, []entities.RepoIdentity{expected}, f.registry.List())
		assert.Equal(t, []entities.RepoIdentity{expected}, f.repoList.Snapshot())
		assert.Equal(t, []entities.RepoIdentity{expected}, f.sync.Synced())
		assert.Equal(t, []doubles.SpawnCall{
			{WorkingDir: checkoutsDir + "/medusa", TimeoutSeconds: f.settings.Fuzzer.Timeout},
		}, f.launcher.SpawnCalls())
	})

	t.Run("should accept the url:branch record form", func(t *testing.T) {
		t.Parallel()

		// given
		f := newFixture(t)
		cmd := newStartCommand(f)

		// when
		result, err := cmd.Execute(context.Background(), commands.StartOptions{
			URL: "https://github.com/crytic/echidna.git:release/2.0",
		})

		// then
		require.NoError(t, err)
		assert.Equal(t, "echidna", result.Name)
		assert.Equal(t, "release/2.0", f.registry.List()[0].Branch)
	})

	t.Run("should not persist an already tracked repository twice", func(t *testing.T) {
		t.Parallel()

		// given
		identity := identityNamed("medusa")
		f := newFixture(t, identity)
		cmd := newStartCommand(f)

		// when
		_, err := cmd.Execute(context.Background(), commands.StartOptions{URL: identity.URL})

		// then
		require.NoError(t, err)
		assert.Len(t, f.repoList.Snapshot(), 1)
		assert.Len(t, f.registry.List(), 1)
	})

	t.Run("should use the timeout override", func(t *testing.T) {
		t.Parallel()

		// given
		f := newFixture(t)
		cmd := newStartCommand(f)

		// when
		_, err := cmd.Execute(context.Background(), commands.StartOptions{
			URL: "https://github.com/crytic/medusa.git", TimeoutSeconds: 60,
		})

		// then
		require.NoError(t, err)
		assert.Equal(t, 60, f.launcher.SpawnCalls()[0].TimeoutSeconds)
	})

	t.Run("should reject a malformed URL without tracking it", func(t *testing.T) {
		t.Parallel()

		// given
		f := newFixture(t)
		cmd := newStartCommand(f)

		// when
		_, err := cmd.Execute(context.Background(), commands.StartOptions{URL: "not-a-url"})

		// then
		require.ErrorIs(t, err, entities.ErrMalformedURL)
		assert.Empty(t, f.registry.List())
		assert.Empty(t, f.repoList.Snapshot())
	})

	t.Run("should roll back the registry when persisting fails", func(t *testing.T) {
		t.Parallel()

		// given
		f := newFixture(t)
		f.repoList.AppendErr = entities.ErrPersistenceFailure
		cmd := newStartCommand(f)

		// when
		_, err := cmd.Execute(context.Background(), commands.StartOptions{URL: "https://github.com/crytic/medusa.git"})

		// then
		require.ErrorIs(t, err, entities.ErrPersistenceFailure)
		assert.Empty(t, f.registry.List())
		assert.Empty(t, f.launcher.SpawnCalls())
	})

	t.Run("should not spawn when the sync fails", func(t *testing.T) {
		t.Parallel()

		// given
		f := newFixture(t)
		f.sync.Errs = map[string]error{"medusa": errors.Join(entities.ErrSyncFailure, errors.New("no route"))}
		cmd := newStartCommand(f)

		// when
		_, err := cmd.Execute(context.Background(), commands.StartOptions{URL: "https://github.com/crytic/medusa.git"})

		// then
		require.ErrorIs(t, err, entities.ErrSyncFailure)
		assert.Empty(t, f.launcher.SpawnCalls())
		assert.Len(t, f.registry.List(), 1)
	})

	t.Run("should reject a running campaign without syncing it", func(t *testing.T) {
		t.Parallel()

		// given
		f := newFixture(t)
		cmd := newStartCommand(f)
		opts := commands.StartOptions{URL: "https://github.com/crytic/medusa.git"}
		_, err := cmd.Execute(context.Background(), opts)
		require.NoError(t, err)

		// when
		_, err = cmd.Execute(context.Background(), opts)

		// then
		require.ErrorIs(t, err, entities.ErrAlreadyRunning)
		assert.Len(t, f.sync.Synced(), 1)
		assert.Len(t, f.launcher.SpawnCalls(), 1)
	})
}
