package dsl

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/turing/internal/runtime"
	"github.com/aretw0/turing/internal/validator"
	"github.com/aretw0/turing/pkg/domain"
)

func TestBuilder_Parity(t *testing.T) {
	// 1. Build the machine using DSL
	b := New().Input("0", "1")

	b.State("q0").Initial().
		On("0").Go("q1").
		On("1").Go("q0")

	b.State("q1").Final()

	def, err := b.Build()
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	// 2. Verify the definition
	if def.Initial() != "q0" {
		t.Errorf("Expected initial state 'q0', got '%s'", def.Initial())
	}
	if !def.IsFinal("q1") || def.IsFinal("q0") {
		t.Errorf("Expected only q1 to be final, got %v", def.Finals())
	}
	if got := len(def.TapeAlphabet()); got != 3 {
		t.Errorf("Expected derived tape alphabet of 3 symbols, got %v", def.TapeAlphabet())
	}

	// 3. Run it
	engine := runtime.NewEngine()
	for input, want := range map[string]domain.Verdict{"0": domain.Accept, "11": domain.Reject, "110": domain.Accept} {
		got, err := engine.Recognize(context.Background(), def, input)
		if err != nil {
			t.Fatalf("Recognize(%q) failed: %v", input, err)
		}
		if got != want {
			t.Errorf("Recognize(%q) = %s, want %s", input, got, want)
		}
	}
}

func TestBuilder_RuleDefaultsAndOverride(t *testing.T) {
	b := New().Input("a")
	b.State("s").Initial().
		On("a").Write("x").Left().Go("t").
		On("a").Go("s")
	b.State("t").Final()

	def := b.MustBuild()

	act, ok := def.Lookup("s", "a")
	if !ok {
		t.Fatal("Expected a transition for (s, a)")
	}
	want := domain.Action{Next: "s", Write: "a", Move: domain.Right}
	if act != want {
		t.Errorf("Expected later rule to win: got %+v, want %+v", act, want)
	}
	if def.Len() != 1 {
		t.Errorf("Expected 1 transition, got %d", def.Len())
	}
}

func TestBuilder_ExplicitTapeIsValidated(t *testing.T) {
	b := New().Input("a").Tape("a", "_")
	b.State("s").Initial().On("a").Write("z").Go("s")

	_, err := b.Build()
	var vErr *validator.Error
	if !errors.As(err, &vErr) {
		t.Fatalf("Expected validation error, got %v", err)
	}
}

func TestBuilder_RequiresInitial(t *testing.T) {
	b := New()
	b.State("s").Final()

	if _, err := b.Build(); err == nil {
		t.Error("Expected error without initial state")
	}
}

func TestBuilder_MustBuildPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected MustBuild to panic")
		}
	}()
	New().MustBuild()
}
