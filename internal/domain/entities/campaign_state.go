package entities

import "fmt"

// CampaignState is the lifecycle state of one campaign. The set of
// implementations is closed: RunningState, StoppedState and ErrorState.
type CampaignState interface {
	isCampaignState()
}

// RunningState means the fuzzer is believed alive.
type RunningState struct {
	PID int
}

// StoppedState means the fuzzer exited on its own or after an interrupt.
type StoppedState struct {
	Status ExitStatus
}

// ErrorState means waiting on the process failed; it says nothing about the fuzzer's own exit.
type ErrorState struct {
	Message string
}

func (RunningState) isCampaignState() {}
func (StoppedState) isCampaignState() {}
func (ErrorState) isCampaignState()   {}

// ExitStatus is the termination status of a fuzzer process.
type ExitStatus struct {
	Success bool
	Code    int    // -1 when terminated by a signal
	Signal  string // empty unless terminated by a signal
}

// String renders the status the way operators read it in status reports.
func (it ExitStatus) String() string {
	if it.Signal != "" {
		return "signal: " + it.Signal
	}
	return fmt.Sprintf("exit status: %d", it.Code)
}

// FormatCampaignState renders a state without the campaign name.
func FormatCampaignState(state CampaignState) string {
	switch s := state.(type) {
	case RunningState:
		return fmt.Sprintf("Running (PID: %d)", s.PID)
	case StoppedState:
		return fmt.Sprintf("Stopped (Status: %s)", s.Status)
	case ErrorState:
		return fmt.Sprintf("Error (Message: %s)", s.Message)
	default:
		panic(fmt.Sprintf("unhandled campaign state %T", state))
	}
}

// FormatStatusLine renders "<name>: <state>" for the command-facing report.
func FormatStatusLine(name string, state CampaignState) string {
	return name + ": " + FormatCampaignState(state)
}
