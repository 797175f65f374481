//go:build unit

package internal_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/dig"

	"github.com/rios0rios0/fuzzkeeper/internal"
	"github.com/rios0rios0/fuzzkeeper/internal/domain/entities"
)

func TestRegisterProviders(t *testing.T) {
	t.Run("should resolve the application with its top-level controllers", func(t *testing.T) {
		// given
		reposDir := filepath.Join(t.TempDir(), "repos")
		config := filepath.Join(t.TempDir(), "fuzzkeeper.yaml")
		require.NoError(t, os.WriteFile(config, []byte("repos_dir: "+reposDir+"\n"), 0o600))
		t.Setenv(entities.ConfigEnvVar, config)
		container := dig.New()

		// when
		err := internal.RegisterProviders(container)
		require.NoError(t, err)
		var app *internal.AppInternal
		invokeErr := container.Invoke(func(ai *internal.AppInternal) { app = ai })

		// then
		require.NoError(t, invokeErr)
		names := make([]string, 0, len(app.GetControllers()))
		for _, controller := range app.GetControllers() {
			names = append(names, controller.GetBind().Use)
		}
		assert.Equal(t, []string{"console", "repos"}, names)
		assert.FileExists(t, filepath.Join(reposDir, "repos.txt"))
	})
}
