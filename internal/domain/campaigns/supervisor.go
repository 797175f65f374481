package campaigns

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/fuzzkeeper/internal/domain/entities"
	"github.com/rios0rios0/fuzzkeeper/internal/domain/repositories"
)

// Exit describes the terminal write a monitor attempted for a campaign.
type Exit struct {
	Name  string
	State entities.CampaignState
	// Superseded is true when the write was dropped because the campaign had
	// been stopped or restarted since this monitor's process was spawned.
	Superseded bool
}

// Option configures a Supervisor.
type Option func(*Supervisor)

// WithExitObserver registers a callback invoked after every monitor write.
// It runs on the monitor goroutine, outside the supervisor lock.
func WithExitObserver(fn func(exit Exit)) Option {
	return func(s *Supervisor) {
		s.onExit = fn
	}
}

// campaign is one map entry. run is stamped by Start and identifies which
// monitor is allowed to write the terminal state.
type campaign struct {
	state entities.CampaignState
	run   uuid.UUID
}

// Supervisor owns the name -> campaign state registry and is the only way to
// start or stop fuzzers. All operations are serialised by one mutex, which is
// never held while waiting for a process to exit.
//
// Supervisor is safe for concurrent use.
type Supervisor struct {
	mu        sync.Mutex
	campaigns map[string]campaign
	launcher  repositories.ProcessLauncher
	onExit    func(exit Exit)
}

// NewSupervisor creates an empty supervisor spawning fuzzers through launcher.
func NewSupervisor(launcher repositories.ProcessLauncher, opts ...Option) *Supervisor {
	s := &Supervisor{
		campaigns: make(map[string]campaign),
		launcher:  launcher,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start spawns the fuzzer for identity in workingDir and records it as running.
//
// The running check, the spawn and the insert share one critical section so
// two concurrent starts for the same name cannot both spawn. A terminal entry
// left by a previous run is overwritten.
func (s *Supervisor) Start(identity entities.RepoIdentity, workingDir string, timeoutSeconds int) (int, error) {
	name := identity.Name()

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.campaigns[name]; ok {
		if running, isRunning := existing.state.(entities.RunningState); isRunning {
			return 0, fmt.Errorf("%w: %s (PID: %d)", entities.ErrAlreadyRunning, name, running.PID)
		}
	}

	handle, err := s.launcher.Spawn(workingDir, timeoutSeconds)
	if err != nil {
		return 0, fmt.Errorf("%w for %s: %w", entities.ErrSpawnFailure, name, err)
	}

	run := uuid.New()
	pid := handle.PID()
	s.campaigns[name] = campaign{
		state: entities.RunningState{PID: pid},
		run:   run,
	}

	logger.WithFields(logger.Fields{
		"campaign": name,
		"pid":      pid,
		"run":      run.String(),
	}).Infof("Started fuzzing campaign in %s", workingDir)

	m := &monitor{supervisor: s, name: name, run: run, handle: handle}
	go m.watch()

	return pid, nil
}

// Stop interrupts a running campaign and forgets it immediately.
//
// The entry is removed without waiting for the process to die: a stop is
// requested, not confirmed. When the interrupt cannot be delivered the entry
// is still removed and the returned error wraps ErrSignalFailure.
func (s *Supervisor) Stop(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.campaigns[name]
	if !ok {
		return fmt.Errorf("%w: campaign %s", entities.ErrNotFound, name)
	}

	running, isRunning := existing.state.(entities.RunningState)
	if !isRunning {
		return fmt.Errorf("%w: %s is %s", entities.ErrNotRunning, name, entities.FormatCampaignState(existing.state))
	}

	signalErr := s.launcher.Interrupt(running.PID)
	delete(s.campaigns, name)

	fields := logger.Fields{"campaign": name, "pid": running.PID, "run": existing.run.String()}
	if signalErr != nil {
		logger.WithFields(fields).Warnf("Interrupt failed, process may be orphaned: %v", signalErr)
		return fmt.Errorf("%w: %s (PID: %d): %w", entities.ErrSignalFailure, name, running.PID, signalErr)
	}

	logger.WithFields(fields).Info("Requested campaign stop")
	return nil
}

// State returns a snapshot of the campaign state for name.
func (s *Supervisor) State(name string) (entities.CampaignState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.campaigns[name]
	if !ok {
		return nil, fmt.Errorf("%w: campaign %s", entities.ErrNotFound, name)
	}
	return existing.state, nil
}

// Snapshot returns the state of every known campaign.
func (s *Supervisor) Snapshot() map[string]entities.CampaignState {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make(map[string]entities.CampaignState, len(s.campaigns))
	for name, c := range s.campaigns {
		result[name] = c.state
	}
	return result
}

// complete records the terminal state written by the monitor of run.
// The write is dropped when the entry is gone or belongs to a newer run.
func (s *Supervisor) complete(name string, run uuid.UUID, state entities.CampaignState) {
	s.mu.Lock()
	current, ok := s.campaigns[name]
	applied := ok && current.run == run
	if applied {
		s.campaigns[name] = campaign{state: state, run: run}
	}
	s.mu.Unlock()

	entry := logger.WithFields(logger.Fields{"campaign": name, "run": run.String()})
	if applied {
		entry.Infof("Campaign finished: %s", entities.FormatCampaignState(state))
	} else {
		entry.Debugf("Ignoring exit of a stopped or superseded run: %s", entities.FormatCampaignState(state))
	}

	if s.onExit != nil {
		s.onExit(Exit{Name: name, State: state, Superseded: !applied})
	}
}
