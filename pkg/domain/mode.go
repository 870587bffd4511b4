package domain

import (
	"fmt"
	"strings"
)

// Mode selects the halting policy and the kind of result a run produces.
type Mode string

const (
	// ModeRecognizer halts only when no transition applies and answers accept/reject.
	ModeRecognizer Mode = "recognizer"
	// ModeTransducer also halts on entering a final state and returns the tape from the head.
	ModeTransducer Mode = "transducer"
)

// ParseMode reads a mode name case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeRecognizer, ModeTransducer:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, strings.TrimSpace(s))
	}
}

// Verdict is the answer of a recognizer run.
type Verdict string

const (
	Accept Verdict = "accept"
	Reject Verdict = "reject"
)
