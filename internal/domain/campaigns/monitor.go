package campaigns

import (
	"github.com/google/uuid"

	"github.com/rios0rios0/fuzzkeeper/internal/domain/entities"
	"github.com/rios0rios0/fuzzkeeper/internal/domain/repositories"
)

// monitor owns the live handle of one spawned fuzzer. It waits exactly once
// and reports the outcome back to the supervisor. Monitors cannot be
// cancelled; interrupting the process is the only way to end the wait.
type monitor struct {
	supervisor *Supervisor
	name       string
	run        uuid.UUID
	handle     repositories.ProcessHandle
}

func (m *monitor) watch() {
	status, err := m.handle.Wait()

	var state entities.CampaignState
	if err != nil {
		state = entities.ErrorState{Message: err.Error()}
	} else {
		state = entities.StoppedState{Status: status}
	}

	m.supervisor.complete(m.name, m.run, state)
}
