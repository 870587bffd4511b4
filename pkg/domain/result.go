package domain

// HaltReason records why the step loop stopped.
type HaltReason string

const (
	HaltNoTransition HaltReason = "no_transition"
	HaltFinalState   HaltReason = "final_state"
	HaltStepLimit    HaltReason = "step_limit"
	HaltCanceled     HaltReason = "canceled"
)

// Result is the outcome of running one input.
// Output holds the verdict in recognizer mode and the tape suffix in transducer mode.
// Err is set only when the run did not halt on its own (step limit, cancellation);
// in that case Output is empty.
type Result struct {
	Input  string     `json:"input"`
	Output string     `json:"output"`
	Steps  int        `json:"steps"`
	Halt   HaltReason `json:"halt"`
	Err    error      `json:"-"`
}

// Halted reports whether the machine stopped by itself.
func (r Result) Halted() bool {
	return r.Err == nil
}

// Line renders the result as a single output line.
func (r Result) Line() string {
	if r.Err != nil {
		return "error: " + r.Err.Error()
	}
	return r.Output
}
