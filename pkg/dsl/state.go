package dsl

import "github.com/aretw0/turing/pkg/domain"

// StateBuilder provides a fluent API for configuring a state.
type StateBuilder struct {
	id      domain.State
	final   bool
	builder *Builder
}

// Initial marks the state as the initial state, replacing any earlier choice.
func (s *StateBuilder) Initial() *StateBuilder {
	s.builder.initial = s.id
	return s
}

// Final adds the state to the final states.
func (s *StateBuilder) Final() *StateBuilder {
	s.final = true
	return s
}

// On starts a transition taken when the head reads sym in this state.
// By default the rule writes sym back and moves right.
func (s *StateBuilder) On(sym domain.Symbol) *RuleBuilder {
	return &RuleBuilder{
		state: s,
		read:  sym,
		write: sym,
		move:  domain.Right,
	}
}

// RuleBuilder configures a single transition.
type RuleBuilder struct {
	state *StateBuilder
	read  domain.Symbol
	write domain.Symbol
	move  domain.Direction
}

// Write sets the symbol written under the head.
func (r *RuleBuilder) Write(sym domain.Symbol) *RuleBuilder {
	r.write = sym
	return r
}

// Left moves the head one cell to the left.
func (r *RuleBuilder) Left() *RuleBuilder {
	r.move = domain.Left
	return r
}

// Right moves the head one cell to the right.
func (r *RuleBuilder) Right() *RuleBuilder {
	r.move = domain.Right
	return r
}

// Go commits the transition with next as target state and returns the source state for chaining.
// The target state is declared if needed. A later rule for the same (state, symbol) replaces this one.
func (r *RuleBuilder) Go(next domain.State) *StateBuilder {
	b := r.state.builder
	b.State(next)
	b.rules = append(b.rules, domain.Rule{
		Key:    domain.Key{State: r.state.id, Symbol: r.read},
		Action: domain.Action{Next: next, Write: r.write, Move: r.move},
		Line:   len(b.rules),
		Raw:    r.move.String(),
	})
	return r.state
}
