package repositories

import (
	"github.com/rios0rios0/fuzzkeeper/internal/domain/entities"
)

// ProcessHandle is the live handle of a spawned fuzzer. Exactly one owner may call Wait.
type ProcessHandle interface {
	PID() int

	// Wait blocks until the process terminates. A non-nil error means the wait
	// machinery failed, not that the fuzzer exited unsuccessfully.
	Wait() (entities.ExitStatus, error)
}

// ProcessLauncher spawns and signals external fuzzer processes.
type ProcessLauncher interface {
	// Spawn starts the fuzzer in workingDir with the given --timeout in seconds.
	Spawn(workingDir string, timeoutSeconds int) (ProcessHandle, error)

	// Interrupt sends a graceful interrupt (SIGINT) to pid, never a hard kill.
	Interrupt(pid int) error
}
