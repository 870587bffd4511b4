package validator

import (
	"fmt"
	"slices"
	"strings"

	"github.com/aretw0/turing/pkg/domain"
)

// Issue is a single finding of the strict check.
type Issue struct {
	// Line is the source line of the offending rule, or -1 for header findings.
	Line    int
	Message string
}

func (i Issue) String() string {
	if i.Line < 0 {
		return i.Message
	}
	return fmt.Sprintf("line %d: %s", i.Line, i.Message)
}

// Error aggregates every issue found by Validate.
type Error struct {
	Issues []Issue
}

func (e *Error) Error() string {
	msgs := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		msgs[i] = issue.String()
	}
	return fmt.Sprintf("found %d errors:\n- %s", len(e.Issues), strings.Join(msgs, "\n- "))
}

// Validate checks the cross references the parser deliberately leaves alone:
// declared states and alphabets, blank placement and head directions.
// The engine never calls it; it exists for tooling that wants a strict mode.
func Validate(def *domain.Definition) error {
	var issues []Issue
	add := func(line int, format string, args ...any) {
		issues = append(issues, Issue{Line: line, Message: fmt.Sprintf(format, args...)})
	}

	states := make(map[domain.State]bool)
	for _, s := range def.States() {
		if states[s] {
			add(-1, "state %q is declared twice", s)
		}
		states[s] = true
	}

	if !states[def.Initial()] {
		add(-1, "initial state %q is not declared", def.Initial())
	}
	for _, f := range def.Finals() {
		if !states[f] {
			add(-1, "final state %q is not declared", f)
		}
	}
	for _, sym := range def.InputAlphabet() {
		if !def.InTapeAlphabet(sym) {
			add(-1, "input symbol %q is not in the tape alphabet", sym)
		}
	}
	if !def.InTapeAlphabet(def.Blank()) {
		add(-1, "blank symbol %q is not in the tape alphabet", def.Blank())
	}
	if def.InInputAlphabet(def.Blank()) {
		add(-1, "blank symbol %q is part of the input alphabet", def.Blank())
	}

	for _, r := range def.Rules() {
		if !states[r.State] {
			add(r.Line, "state %q is not declared", r.State)
		}
		if !states[r.Next] {
			add(r.Line, "next state %q is not declared", r.Next)
		}
		if !def.InTapeAlphabet(r.Symbol) {
			add(r.Line, "read symbol %q is not in the tape alphabet", r.Symbol)
		}
		if !def.InTapeAlphabet(r.Write) {
			add(r.Line, "write symbol %q is not in the tape alphabet", r.Write)
		}
		if r.Move == domain.Stay {
			add(r.Line, "direction %q is neither L nor R; the head will not move", r.Raw)
		}
	}

	if len(issues) > 0 {
		return &Error{Issues: issues}
	}
	return nil
}

// Unreachable returns the declared states that no chain of transitions reaches
// from the initial state, in declaration order.
func Unreachable(def *domain.Definition) []domain.State {
	edges := make(map[domain.State][]domain.State)
	for _, r := range def.Rules() {
		edges[r.State] = append(edges[r.State], r.Next)
	}

	visited := map[domain.State]bool{}
	queue := []domain.State{def.Initial()}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if visited[current] {
			continue
		}
		visited[current] = true

		for _, next := range edges[current] {
			if !visited[next] {
				queue = append(queue, next)
			}
		}
	}

	var out []domain.State
	for _, s := range def.States() {
		if !visited[s] && !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	return out
}
