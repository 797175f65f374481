//go:build unit

package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/fuzzkeeper/internal/domain/commands"
	"github.com/rios0rios0/fuzzkeeper/internal/domain/entities"
)

func TestReposCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should list the persisted repositories", func(t *testing.T) {
		t.Parallel()

		// given
		f := newFixture(t, identityNamed("medusa"), identityNamed("echidna"))
		cmd := commands.NewReposCommand(f.repoList)

		// when
		identities, err := cmd.Execute()

		// then
		require.NoError(t, err)
		assert.Equal(t, []entities.RepoIdentity{identityNamed("medusa"), identityNamed("echidna")}, identities)
	})

	t.Run("should propagate persistence failures", func(t *testing.T) {
		t.Parallel()

		// given
		f := newFixture(t)
		f.repoList.LoadErr = entities.ErrPersistenceFailure
		cmd := commands.NewReposCommand(f.repoList)

		// when
		_, err := cmd.Execute()

		// then
		require.ErrorIs(t, err, entities.ErrPersistenceFailure)
	})
}

func TestNewRepoRegistryFromList(t *testing.T) {
	t.Parallel()

	t.Run("should seed the registry in file order", func(t *testing.T) {
		t.Parallel()

		// given
		f := newFixture(t, identityNamed("medusa"), identityNamed("echidna"))

		// when
		registry, err := commands.NewRepoRegistryFromList(f.repoList)

		// then
		require.NoError(t, err)
		assert.Equal(t, []entities.RepoIdentity{identityNamed("medusa"), identityNamed("echidna")}, registry.List())
	})

	t.Run("should fail when the list cannot be loaded", func(t *testing.T) {
		t.Parallel()

		// given
		f := newFixture(t)
		f.repoList.LoadErr = entities.ErrPersistenceFailure

		// when
		registry, err := commands.NewRepoRegistryFromList(f.repoList)

		// then
		require.ErrorIs(t, err, entities.ErrPersistenceFailure)
		assert.Nil(t, registry)
	})
}
