//go:build unit

package controllers_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/fuzzkeeper/internal/domain/commands"
	"github.com/rios0rios0/fuzzkeeper/internal/domain/entities"
	"github.com/rios0rios0/fuzzkeeper/internal/infrastructure/controllers"
	doubles "github.com/rios0rios0/fuzzkeeper/test/domain/commanddoubles"
)

func TestStartController(t *testing.T) {
	t.Parallel()

	t.Run("should reply with the name and pid of the started campaign", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &doubles.StubStartCommand{Result: commands.StartResult{Name: "medusa", PID: 4242}}
		controller := controllers.NewStartController(stub)

		// when
		out, err := execute(t, controller, "https://github.com/crytic/medusa.git", "dev", "--timeout", "60")

		// then
		require.NoError(t, err)
		assert.Equal(t, "Fuzzing campaign running for medusa (PID: 4242)\n", out)
		assert.Equal(t, commands.StartOptions{
			URL: "https://github.com/crytic/medusa.git", Branch: "dev", TimeoutSeconds: 60,
		}, stub.LastOpts)
	})

	t.Run("should require a url", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &doubles.StubStartCommand{}
		controller := controllers.NewStartController(stub)

		// when
		_, err := execute(t, controller)

		// then
		require.Error(t, err)
		assert.Zero(t, stub.ExecuteCallCount)
	})

	t.Run("should return the command error", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &doubles.StubStartCommand{ExecuteErr: entities.ErrAlreadyRunning}
		controller := controllers.NewStartController(stub)

		// when
		out, err := execute(t, controller, "https://github.com/crytic/medusa.git")

		// then
		require.ErrorIs(t, err, entities.ErrAlreadyRunning)
		assert.Empty(t, out)
	})
}

func TestPauseController(t *testing.T) {
	t.Parallel()

	t.Run("should reply with the paused name", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &doubles.StubPauseCommand{}
		controller := controllers.NewPauseController(stub)

		// when
		out, err := execute(t, controller, "medusa")

		// then
		require.NoError(t, err)
		assert.Equal(t, "Paused medusa\n", out)
		assert.Equal(t, "medusa", stub.LastName)
	})

	t.Run("should return the command error", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &doubles.StubPauseCommand{ExecuteErr: entities.ErrNotRunning}
		controller := controllers.NewPauseController(stub)

		// when
		_, err := execute(t, controller, "medusa")

		// then
		require.ErrorIs(t, err, entities.ErrNotRunning)
	})
}

func TestStatusController(t *testing.T) {
	t.Parallel()

	t.Run("should reply with the count and one line per campaign", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &doubles.StubStatusCommand{Lines: []string{
			"medusa: Running (PID: 10)",
			"echidna: Not running",
		}}
		controller := controllers.NewStatusController(stub)

		// when
		out, err := execute(t, controller)

		// then
		require.NoError(t, err)
		assert.Equal(t, "Currently 2 campaigns:\nmedusa: Running (PID: 10)\nechidna: Not running\n", out)
	})

	t.Run("should report zero campaigns", func(t *testing.T) {
		t.Parallel()

		// given
		controller := controllers.NewStatusController(&doubles.StubStatusCommand{})

		// when
		out, err := execute(t, controller)

		// then
		require.NoError(t, err)
		assert.Equal(t, "Currently 0 campaigns:\n", out)
	})
}

func TestArchiveController(t *testing.T) {
	t.Parallel()

	t.Run("should reply with the archived name", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &doubles.StubArchiveCommand{}
		controller := controllers.NewArchiveController(stub)

		// when
		out, err := execute(t, controller, "medusa")

		// then
		require.NoError(t, err)
		assert.Equal(t, "Archived medusa\n", out)
		assert.Equal(t, "medusa", stub.LastName)
	})

	t.Run("should require exactly one name", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &doubles.StubArchiveCommand{}
		controller := controllers.NewArchiveController(stub)

		// when
		_, err := execute(t, controller, "medusa", "echidna")

		// then
		require.Error(t, err)
		assert.Zero(t, stub.ExecuteCallCount)
	})
}

func TestResumeController(t *testing.T) {
	t.Parallel()

	t.Run("should report every outcome and a summary", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &doubles.StubResumeCommand{Outcomes: []commands.ResumeOutcome{
			{Name: "medusa", PID: 11},
			{Name: "echidna", Err: errors.New("sync failed")},
		}}
		controller := controllers.NewResumeController(stub)

		// when
		out, err := execute(t, controller)

		// then
		require.NoError(t, err)
		assert.Equal(t, "Fuzzing campaign running for medusa (PID: 11)\n"+
			"Could not resume echidna: sync failed\n"+
			"Resumed 1 of 2 campaigns\n", out)
	})
}

func TestReposController(t *testing.T) {
	t.Parallel()

	t.Run("should print one record per tracked repository", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &doubles.StubReposCommand{Identities: []entities.RepoIdentity{
			{URL: "https://github.com/crytic/medusa.git"},
			{URL: "https://github.com/crytic/echidna.git", Branch: "dev"},
		}}
		controller := controllers.NewReposController(stub)

		// when
		out, err := execute(t, controller)

		// then
		require.NoError(t, err)
		assert.Equal(t, "https://github.com/crytic/medusa.git\nhttps://github.com/crytic/echidna.git:dev\n", out)
	})

	t.Run("should say when nothing is tracked", func(t *testing.T) {
		t.Parallel()

		// given
		controller := controllers.NewReposController(&doubles.StubReposCommand{})

		// when
		out, err := execute(t, controller)

		// then
		require.NoError(t, err)
		assert.Equal(t, "No tracked repositories\n", out)
	})
}
