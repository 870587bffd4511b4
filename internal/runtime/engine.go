package runtime

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/google/uuid"
)

// cancelCheckInterval is how many steps run between two context checks.
const cancelCheckInterval = 1024

// Engine is the core stepping loop. It holds no per-run state and may be
// shared by concurrent callers.
type Engine struct {
	stepLimit int
	logger    *slog.Logger
	hooks     domain.LifecycleHooks
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithStepLimit bounds the number of steps of a single run. Zero means unbounded.
func WithStepLimit(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.stepLimit = n
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLifecycleHooks registers run start/end callbacks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// NewEngine creates a new engine.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// StepLimit returns the configured step budget (0 when unbounded).
func (e *Engine) StepLimit() int { return e.stepLimit }

// machine is the configuration of a single run: tape, head and current state.
type machine struct {
	def   *domain.Definition
	tape  *Tape
	head  int
	state domain.State
}

func newMachine(def *domain.Definition, input string) *machine {
	return &machine{
		def:   def,
		tape:  NewTape(Tokenize(def, input), def.Blank()),
		state: def.Initial(),
	}
}

// next looks up the transition for the symbol under the head.
func (m *machine) next() (domain.Action, bool) {
	return m.def.Lookup(m.state, m.tape.Read(m.head))
}

// apply writes, changes state and moves the head.
func (m *machine) apply(a domain.Action) {
	m.head = m.tape.Write(m.head, a.Write)
	m.state = a.Next
	m.head += a.Move.Offset()
}

// Run executes the machine on input until it halts under the policy of mode.
//
// Both modes halt when no transition exists for (state, symbol). A transducer
// also halts as soon as a step leaves it in a final state; a recognizer keeps
// stepping through final states and only judges the state it stops in.
//
// Without a step limit a machine that never halts makes Run block until ctx is done.
func (e *Engine) Run(ctx context.Context, def *domain.Definition, mode domain.Mode, input string) domain.Result {
	start := time.Now()
	runID := ""
	if e.hooks.OnRunStart != nil || e.hooks.OnRunEnd != nil {
		runID = uuid.NewString()
	}
	if e.hooks.OnRunStart != nil {
		e.hooks.OnRunStart(ctx, &domain.RunEvent{
			EventBase: domain.EventBase{Timestamp: start, Type: domain.EventRunStart, RunID: runID},
			Mode:      mode,
			Input:     input,
		})
	}

	m := newMachine(def, input)
	res := domain.Result{Input: input}

	for {
		if res.Steps%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				res.Halt, res.Err = domain.HaltCanceled, err
				break
			}
		}

		action, ok := m.next()
		if !ok {
			res.Halt = domain.HaltNoTransition
			break
		}
		if e.stepLimit > 0 && res.Steps >= e.stepLimit {
			res.Halt, res.Err = domain.HaltStepLimit, &domain.StepLimitError{Limit: e.stepLimit}
			break
		}

		m.apply(action)
		res.Steps++

		if mode == domain.ModeTransducer && def.IsFinal(m.state) {
			res.Halt = domain.HaltFinalState
			break
		}
	}

	if res.Err == nil {
		res.Output = e.output(m, mode)
	}

	e.logger.Debug("Run finished",
		"mode", mode,
		"steps", res.Steps,
		"halt", res.Halt,
		"state", m.state,
		"err", res.Err,
	)

	if e.hooks.OnRunEnd != nil {
		final := res
		e.hooks.OnRunEnd(ctx, &domain.RunEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventRunEnd, RunID: runID},
			Mode:      mode,
			Input:     input,
			Result:    &final,
			Duration:  time.Since(start),
		})
	}

	return res
}

func (e *Engine) output(m *machine, mode domain.Mode) string {
	if mode == domain.ModeTransducer {
		return m.tape.From(m.head)
	}
	if m.def.IsFinal(m.state) {
		return string(domain.Accept)
	}
	return string(domain.Reject)
}

// Recognize runs def as a recognizer and returns its verdict.
func (e *Engine) Recognize(ctx context.Context, def *domain.Definition, input string) (domain.Verdict, error) {
	res := e.Run(ctx, def, domain.ModeRecognizer, input)
	if res.Err != nil {
		return "", res.Err
	}
	return domain.Verdict(res.Output), nil
}

// Transduce runs def as a transducer and returns the tape from the head rightwards.
func (e *Engine) Transduce(ctx context.Context, def *domain.Definition, input string) (string, error) {
	res := e.Run(ctx, def, domain.ModeTransducer, input)
	if res.Err != nil {
		return "", res.Err
	}
	return res.Output, nil
}
