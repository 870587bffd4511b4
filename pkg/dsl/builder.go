package dsl

import (
	"fmt"

	"github.com/aretw0/turing/internal/validator"
	"github.com/aretw0/turing/pkg/domain"
)

// Builder manages the machine construction.
type Builder struct {
	states  []*StateBuilder
	byID    map[domain.State]*StateBuilder
	input   []domain.Symbol
	tape    []domain.Symbol
	blank   domain.Symbol
	initial domain.State
	rules   []domain.Rule
}

// New creates a new machine builder with "_" as blank symbol.
func New() *Builder {
	return &Builder{
		byID:  make(map[domain.State]*StateBuilder),
		blank: "_",
	}
}

// Blank sets the blank symbol.
func (b *Builder) Blank(sym domain.Symbol) *Builder {
	b.blank = sym
	return b
}

// Input declares the input alphabet.
func (b *Builder) Input(symbols ...domain.Symbol) *Builder {
	b.input = append(b.input, symbols...)
	return b
}

// Tape declares the tape alphabet explicitly. Without it the tape alphabet is
// the input alphabet, the blank and every symbol read or written by a rule.
func (b *Builder) Tape(symbols ...domain.Symbol) *Builder {
	b.tape = append(b.tape, symbols...)
	return b
}

// State declares a state.
// If the state already exists, it returns the existing builder.
func (b *Builder) State(id domain.State) *StateBuilder {
	if sb, ok := b.byID[id]; ok {
		return sb
	}
	sb := &StateBuilder{id: id, builder: b}
	b.byID[id] = sb
	b.states = append(b.states, sb)
	return sb
}

// Spec assembles the collected declarations without validating them.
func (b *Builder) Spec() domain.Spec {
	spec := domain.Spec{
		InputAlphabet: append([]domain.Symbol(nil), b.input...),
		Initial:       b.initial,
		Blank:         b.blank,
		Rules:         append([]domain.Rule(nil), b.rules...),
	}
	for _, sb := range b.states {
		spec.States = append(spec.States, sb.id)
		if sb.final {
			spec.Finals = append(spec.Finals, sb.id)
		}
	}

	if len(b.tape) > 0 {
		spec.TapeAlphabet = append([]domain.Symbol(nil), b.tape...)
		return spec
	}

	seen := make(map[domain.Symbol]bool)
	add := func(s domain.Symbol) {
		if !seen[s] {
			seen[s] = true
			spec.TapeAlphabet = append(spec.TapeAlphabet, s)
		}
	}
	for _, s := range b.input {
		add(s)
	}
	add(b.blank)
	for _, r := range b.rules {
		add(r.Symbol)
		add(r.Write)
	}
	return spec
}

// Build compiles the machine into a definition and validates it strictly.
func (b *Builder) Build() (*domain.Definition, error) {
	if b.initial == "" {
		return nil, fmt.Errorf("no initial state: mark one state with Initial()")
	}
	def := domain.NewDefinition(b.Spec())
	if err := validator.Validate(def); err != nil {
		return nil, fmt.Errorf("invalid machine: %w", err)
	}
	return def, nil
}

// MustBuild is like Build but panics on error.
func (b *Builder) MustBuild() *domain.Definition {
	def, err := b.Build()
	if err != nil {
		panic(err)
	}
	return def
}
