//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/fuzzkeeper/internal/domain/commands"
)

// StubStartCommand is a stub implementation of commands.Start.
type StubStartCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Result           commands.StartResult
	LastOpts         commands.StartOptions
}

var _ commands.Start = (*StubStartCommand)(nil)

func (s *StubStartCommand) Execute(_ context.Context, opts commands.StartOptions) (commands.StartResult, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	if s.ExecuteErr != nil {
		return commands.StartResult{}, s.ExecuteErr
	}
	return s.Result, nil
}
