//go:build unit

package campaigns_test

import (
	"errors"
	"testing"

	logger "github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/dig"

	"github.com/rios0rios0/fuzzkeeper/internal/domain/campaigns"
	"github.com/rios0rios0/fuzzkeeper/internal/domain/entities"
	"github.com/rios0rios0/fuzzkeeper/internal/domain/repositories"
	doubles "github.com/rios0rios0/fuzzkeeper/test/infrastructure/repositorydoubles"
)

// warningsFor returns the warning messages logged for campaign.
func warningsFor(hook *logtest.Hook, campaign string) []string {
	var messages []string
	for _, entry := range hook.AllEntries() {
		if entry.Level == logger.WarnLevel && entry.Data["campaign"] == campaign {
			messages = append(messages, entry.Message)
		}
	}
	return messages
}

func TestReportExit(t *testing.T) {
	hook := logtest.NewGlobal()

	t.Run("should warn about a failing exit", func(t *testing.T) {
		// given
		exit := campaigns.Exit{
			Name:  "report-failing",
			State: entities.StoppedState{Status: entities.ExitStatus{Code: 2}},
		}

		// when
		campaigns.ReportExit(exit)

		// then
		assert.Equal(t, []string{"Campaign ended unsuccessfully: Stopped (Status: exit status: 2)"},
			warningsFor(hook, "report-failing"))
	})

	t.Run("should warn about a wait error", func(t *testing.T) {
		// given
		exit := campaigns.Exit{Name: "report-error", State: entities.ErrorState{Message: "wait failed"}}

		// when
		campaigns.ReportExit(exit)

		// then
		assert.Len(t, warningsFor(hook, "report-error"), 1)
	})

	t.Run("should stay quiet for clean and superseded exits", func(t *testing.T) {
		// given
		clean := campaigns.Exit{
			Name:  "report-quiet",
			State: entities.StoppedState{Status: entities.ExitStatus{Success: true}},
		}
		superseded := campaigns.Exit{
			Name:       "report-quiet",
			State:      entities.StoppedState{Status: entities.ExitStatus{Code: 1}},
			Superseded: true,
		}

		// when
		campaigns.ReportExit(clean)
		campaigns.ReportExit(superseded)

		// then
		assert.Empty(t, warningsFor(hook, "report-quiet"))
	})

	t.Run("should be wired into the registered supervisor", func(t *testing.T) {
		// given
		launcher := &doubles.SpyProcessLauncher{}
		t.Cleanup(launcher.ReleaseAll)
		container := dig.New()
		require.NoError(t, container.Provide(func() repositories.ProcessLauncher { return launcher }))
		require.NoError(t, campaigns.RegisterProviders(container))
		var supervisor *campaigns.Supervisor
		require.NoError(t, container.Invoke(func(s *campaigns.Supervisor) { supervisor = s }))
		identity, err := entities.ParseRepoIdentity("https://github.com/crytic/report-wired.git")
		require.NoError(t, err)
		_, err = supervisor.Start(identity, t.TempDir(), 10)
		require.NoError(t, err)

		// when
		launcher.Handles()[0].Fail(errors.New("wait failed"))

		// then
		assert.Eventually(t, func() bool {
			return len(warningsFor(hook, "report-wired")) == 1
		}, eventuallyWait, eventuallyTick)
	})
}
