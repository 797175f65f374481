//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/fuzzkeeper/internal/domain/commands"
)

// StubPauseCommand is a stub implementation of commands.Pause.
type StubPauseCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastName         string
}

var _ commands.Pause = (*StubPauseCommand)(nil)

func (s *StubPauseCommand) Execute(name string) error {
	s.ExecuteCallCount++
	s.LastName = name
	return s.ExecuteErr
}

// StubArchiveCommand is a stub implementation of commands.Archive.
type StubArchiveCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastName         string
}

var _ commands.Archive = (*StubArchiveCommand)(nil)

func (s *StubArchiveCommand) Execute(name string) error {
	s.ExecuteCallCount++
	s.LastName = name
	return s.ExecuteErr
}
