//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"sync"

	"github.com/rios0rios0/fuzzkeeper/internal/domain/entities"
	"github.com/rios0rios0/fuzzkeeper/internal/domain/repositories"
)

// StubProcessHandle is a process handle whose Wait blocks until the test
// calls Exit or Fail.
type StubProcessHandle struct {
	Pid  int
	done chan waitResult
	once sync.Once
}

type waitResult struct {
	status entities.ExitStatus
	err    error
}

var _ repositories.ProcessHandle = (*StubProcessHandle)(nil)

// NewStubProcessHandle creates a handle reporting the given pid.
func NewStubProcessHandle(pid int) *StubProcessHandle {
	return &StubProcessHandle{Pid: pid, done: make(chan waitResult, 1)}
}

func (h *StubProcessHandle) PID() int { return h.Pid }

func (h *StubProcessHandle) Wait() (entities.ExitStatus, error) {
	result := <-h.done
	return result.status, result.err
}

// Exit releases Wait with the given status. Later calls are ignored.
func (h *StubProcessHandle) Exit(status entities.ExitStatus) {
	h.once.Do(func() { h.done <- waitResult{status: status} })
}

// Fail releases Wait with an error. Later calls are ignored.
func (h *StubProcessHandle) Fail(err error) {
	h.once.Do(func() { h.done <- waitResult{err: err} })
}

// SpawnCall records a single invocation of Spawn.
type SpawnCall struct {
	WorkingDir     string
	TimeoutSeconds int
}

// SpyProcessLauncher implements repositories.ProcessLauncher as a configurable spy.
// Spawned handles get increasing pids starting at FirstPID (default 1000).
type SpyProcessLauncher struct {
	FirstPID     int
	SpawnErr     error
	InterruptErr error

	mu         sync.Mutex
	spawnCalls []SpawnCall
	handles    []*StubProcessHandle
	interrupts []int
}

var _ repositories.ProcessLauncher = (*SpyProcessLauncher)(nil)

func (l *SpyProcessLauncher) Spawn(workingDir string, timeoutSeconds int) (repositories.ProcessHandle, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.spawnCalls = append(l.spawnCalls, SpawnCall{WorkingDir: workingDir, TimeoutSeconds: timeoutSeconds})
	if l.SpawnErr != nil {
		return nil, l.SpawnErr
	}

	first := l.FirstPID
	if first == 0 {
		first = 1000
	}
	handle := NewStubProcessHandle(first + len(l.handles))
	l.handles = append(l.handles, handle)
	return handle, nil
}

func (l *SpyProcessLauncher) Interrupt(pid int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.interrupts = append(l.interrupts, pid)
	return l.InterruptErr
}

// SpawnCalls returns every Spawn invocation, including failed ones.
func (l *SpyProcessLauncher) SpawnCalls() []SpawnCall {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]SpawnCall(nil), l.spawnCalls...)
}

// Handles returns the handles of successful spawns in spawn order.
func (l *SpyProcessLauncher) Handles() []*StubProcessHandle {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]*StubProcessHandle(nil), l.handles...)
}

// Interrupts returns the pids that received an interrupt.
func (l *SpyProcessLauncher) Interrupts() []int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]int(nil), l.interrupts...)
}

// ReleaseAll ends every outstanding Wait with a clean exit so monitors can finish.
func (l *SpyProcessLauncher) ReleaseAll() {
	for _, handle := range l.Handles() {
		handle.Exit(entities.ExitStatus{Success: true})
	}
}
