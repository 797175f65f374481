//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/fuzzkeeper/internal/domain/commands"
	"github.com/rios0rios0/fuzzkeeper/internal/domain/entities"
)

// StubStatusCommand is a stub implementation of commands.Status.
type StubStatusCommand struct {
	ExecuteCallCount int
	Lines            []string
}

var _ commands.Status = (*StubStatusCommand)(nil)

func (s *StubStatusCommand) Execute() []string {
	s.ExecuteCallCount++
	return s.Lines
}

// StubResumeCommand is a stub implementation of commands.Resume.
type StubResumeCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Outcomes         []commands.ResumeOutcome
}

var _ commands.Resume = (*StubResumeCommand)(nil)

func (s *StubResumeCommand) Execute(_ context.Context) ([]commands.ResumeOutcome, error) {
	s.ExecuteCallCount++
	return s.Outcomes, s.ExecuteErr
}

// StubReposCommand is a stub implementation of commands.Repos.
type StubReposCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Identities       []entities.RepoIdentity
}

var _ commands.Repos = (*StubReposCommand)(nil)

func (s *StubReposCommand) Execute() ([]entities.RepoIdentity, error) {
	s.ExecuteCallCount++
	return s.Identities, s.ExecuteErr
}
