package process

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"syscall"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/fuzzkeeper/internal/domain/entities"
	"github.com/rios0rios0/fuzzkeeper/internal/domain/repositories"
)

const (
	timeoutFlag    = "--timeout"
	outputFileMode = 0o644
)

// ExecLauncher spawns the configured fuzzer binary with os/exec.
type ExecLauncher struct {
	binary     string
	args       []string
	outputFile string
}

var _ repositories.ProcessLauncher = (*ExecLauncher)(nil)

// NewExecLauncher creates a launcher for "<binary> <args...> --timeout <n>".
// When outputFile is set, stdout and stderr are appended to that file inside
// the working directory; otherwise they are discarded.
func NewExecLauncher(binary string, args []string, outputFile string) *ExecLauncher {
	return &ExecLauncher{
		binary:     binary,
		args:       append([]string(nil), args...),
		outputFile: outputFile,
	}
}

// NewExecLauncherFromSettings builds the launcher from the fuzzer settings.
func NewExecLauncherFromSettings(settings *entities.Settings) *ExecLauncher {
	return NewExecLauncher(settings.Fuzzer.Binary, settings.Fuzzer.Args, settings.Fuzzer.OutputFile)
}

// Spawn starts the fuzzer in workingDir. The process is not bound to a
// context; only --timeout and Interrupt end it.
func (it *ExecLauncher) Spawn(workingDir string, timeoutSeconds int) (repositories.ProcessHandle, error) {
	args := append(append([]string(nil), it.args...), timeoutFlag, strconv.Itoa(timeoutSeconds))

	//nolint:gosec // the binary and its arguments come from the operator's configuration
	cmd := exec.Command(it.binary, args...)
	cmd.Dir = workingDir
	cmd.Stdin = nil
	// own process group: a terminal Ctrl-C must not reach the campaigns
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	var output io.WriteCloser
	if it.outputFile != "" {
		file, err := os.OpenFile(
			filepath.Join(workingDir, it.outputFile), os.O_APPEND|os.O_CREATE|os.O_WRONLY, outputFileMode,
		)
		if err != nil {
			return nil, fmt.Errorf("open fuzzer output file: %w", err)
		}
		output = file
		cmd.Stdout = file
		cmd.Stderr = file
	}

	if err := cmd.Start(); err != nil {
		if output != nil {
			_ = output.Close()
		}
		return nil, fmt.Errorf("start %s: %w", it.binary, err)
	}

	logger.Debugf("Spawned %s %v in %s (PID: %d)", it.binary, args, workingDir, cmd.Process.Pid)
	return &execHandle{cmd: cmd, output: output}, nil
}

// Interrupt sends SIGINT so the fuzzer can flush its corpus before exiting.
func (it *ExecLauncher) Interrupt(pid int) error {
	proc, err := os.FindProcess(pid)
	if err != nil {
		return fmt.Errorf("find process %d: %w", pid, err)
	}
	if err = proc.Signal(os.Interrupt); err != nil {
		return fmt.Errorf("interrupt process %d: %w", pid, err)
	}
	return nil
}

type execHandle struct {
	cmd    *exec.Cmd
	output io.Closer
}

func (h *execHandle) PID() int {
	return h.cmd.Process.Pid
}

// Wait reaps the process. A non-zero exit is reported through the status,
// not as an error; only failures of the wait itself are errors.
func (h *execHandle) Wait() (entities.ExitStatus, error) {
	err := h.cmd.Wait()
	if h.output != nil {
		if closeErr := h.output.Close(); closeErr != nil {
			logger.Warnf("Failed to close fuzzer output for PID %d: %v", h.PID(), closeErr)
		}
	}

	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return entities.ExitStatus{}, fmt.Errorf("wait for PID %d: %w", h.PID(), err)
	}
	if h.cmd.ProcessState == nil {
		return entities.ExitStatus{}, fmt.Errorf("wait for PID %d: no process state", h.PID())
	}

	return exitStatusOf(h.cmd.ProcessState), nil
}

func exitStatusOf(state *os.ProcessState) entities.ExitStatus {
	status := entities.ExitStatus{
		Success: state.Success(),
		Code:    state.ExitCode(),
	}
	if ws, ok := state.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		status.Signal = fmt.Sprintf("%d (%s)", int(ws.Signal()), ws.Signal())
	}
	return status
}
