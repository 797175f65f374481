//go:build unit

package controllers_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/rios0rios0/fuzzkeeper/internal/domain/entities"
	"github.com/rios0rios0/fuzzkeeper/internal/infrastructure/controllers"
)

// execute runs controller as a Cobra command and returns what it wrote.
func execute(t *testing.T, controller entities.Controller, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := controllers.NewCobraCommand(controller)
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}
