package domain

import (
	"errors"
	"fmt"
)

// ErrDefinitionFormat is matched by every *DefinitionFormatError.
var ErrDefinitionFormat = errors.New("malformed machine definition")

// ErrTransitionFormat is matched by every *TransitionFormatError.
var ErrTransitionFormat = errors.New("malformed transition")

// ErrStepLimitExceeded is matched by every *StepLimitError.
var ErrStepLimitExceeded = errors.New("step limit exceeded")

// ErrUnknownMode is returned when a mode name is neither recognizer nor transducer.
var ErrUnknownMode = errors.New("unknown TM type")

// ErrCacheMiss is returned by result caches when no entry exists for a key.
var ErrCacheMiss = errors.New("cache miss")

// DefinitionFormatError reports a definition whose header section is unusable.
type DefinitionFormatError struct {
	// Line is the 0-based line at fault, or the line count when lines are missing.
	Line   int
	Reason string
}

func (e *DefinitionFormatError) Error() string {
	return fmt.Sprintf("definition line %d: %s", e.Line, e.Reason)
}

func (e *DefinitionFormatError) Is(target error) bool {
	return target == ErrDefinitionFormat
}

// TransitionFormatError reports a transition line that does not have exactly five fields.
type TransitionFormatError struct {
	Line   int
	Text   string
	Fields int
}

func (e *TransitionFormatError) Error() string {
	return fmt.Sprintf("definition line %d: transition %q has %d fields, want 5", e.Line, e.Text, e.Fields)
}

func (e *TransitionFormatError) Is(target error) bool {
	return target == ErrTransitionFormat
}

// StepLimitError is returned when a run is cut short by the configured step budget.
type StepLimitError struct {
	Limit int
}

func (e *StepLimitError) Error() string {
	return fmt.Sprintf("step limit exceeded after %d steps", e.Limit)
}

func (e *StepLimitError) Is(target error) bool {
	return target == ErrStepLimitExceeded
}
