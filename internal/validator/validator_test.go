package validator

import (
	"errors"
	"strings"
	"testing"

	"github.com/aretw0/turing/internal/compiler"
	"github.com/aretw0/turing/pkg/domain"
)

func parse(t *testing.T, src string) *domain.Definition {
	t.Helper()
	def, err := compiler.NewParser().Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	return def
}

func TestValidate(t *testing.T) {
	// Scenario A: well-formed machine
	valid := parse(t, "ok\nq0,q1\n0,1\n0,1,_\nq0\n_\nq1\n(q0,0,q1,0,R)\n(q0,1,q0,1,R)\n")
	if err := Validate(valid); err != nil {
		t.Errorf("Scenario A (Valid) failed: %v", err)
	}

	// Scenario B: every kind of dangling reference
	broken := parse(t, "bad\nq0,q1,q1\n0,x\n0,1\nstart\n_\nq9\n(q0,0,ghost,7,N)\n")
	err := Validate(broken)
	if err == nil {
		t.Fatal("Scenario B (Broken) should have failed, but got nil")
	}

	var vErr *Error
	if !errors.As(err, &vErr) {
		t.Fatalf("Expected *validator.Error, got %T", err)
	}

	want := []string{
		`state "q1" is declared twice`,
		`initial state "start" is not declared`,
		`final state "q9" is not declared`,
		`input symbol "x" is not in the tape alphabet`,
		`blank symbol "_" is not in the tape alphabet`,
		`line 7: next state "ghost" is not declared`,
		`line 7: write symbol "7" is not in the tape alphabet`,
		`line 7: direction "N" is neither L nor R`,
	}
	for _, w := range want {
		if !strings.Contains(err.Error(), w) {
			t.Errorf("Expected %q in error, got:\n%v", w, err)
		}
	}
	if len(vErr.Issues) != len(want) {
		t.Errorf("Expected %d issues, got %d: %v", len(want), len(vErr.Issues), vErr.Issues)
	}
}

func TestValidate_BlankInInputAlphabet(t *testing.T) {
	def := parse(t, "h\nq0\na,_\na,_\nq0\n_\n\n")
	err := Validate(def)
	if err == nil || !strings.Contains(err.Error(), "part of the input alphabet") {
		t.Errorf("Expected blank/input alphabet issue, got %v", err)
	}
}

func TestUnreachable(t *testing.T) {
	def := parse(t, "h\nq0,q1,q2,q3\na\na,_\nq0\n_\nq3\n(q0,a,q1,a,R)\n(q1,_,q0,_,L)\n(q2,a,q3,a,R)\n")
	got := Unreachable(def)
	if len(got) != 2 || got[0] != "q2" || got[1] != "q3" {
		t.Errorf("Expected [q2 q3], got %v", got)
	}

	if got := Unreachable(parse(t, "h\nq0\na\na,_\nq0\n_\n\n")); len(got) != 0 {
		t.Errorf("Expected no unreachable states, got %v", got)
	}
}
