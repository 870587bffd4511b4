package domain

import (
	"fmt"
	"slices"
	"strings"
)

// Spec carries the raw parts of a machine definition before it is frozen.
// Rules are given in source order; a later rule with the same Key replaces an earlier one.
type Spec struct {
	States        []State
	InputAlphabet []Symbol
	TapeAlphabet  []Symbol
	Initial       State
	Blank         Symbol
	Finals        []State
	Rules         []Rule
}

// Definition is an immutable machine description.
// It is safe for concurrent use once constructed.
type Definition struct {
	states        []State
	inputAlphabet map[Symbol]struct{}
	tapeAlphabet  map[Symbol]struct{}
	initial       State
	blank         Symbol
	finals        map[State]struct{}
	transitions   map[Key]Action
	rules         []Rule // first-appearance order, last-write-wins values
	multiRune     bool
}

// NewDefinition freezes a Spec into a Definition.
// No cross-reference checks are made: undeclared states and symbols are accepted as-is.
func NewDefinition(spec Spec) *Definition {
	d := &Definition{
		states:        slices.Clone(spec.States),
		inputAlphabet: toSet(spec.InputAlphabet),
		tapeAlphabet:  toSet(spec.TapeAlphabet),
		initial:       spec.Initial,
		blank:         spec.Blank,
		finals:        toSet(spec.Finals),
		transitions:   make(map[Key]Action, len(spec.Rules)),
	}

	position := make(map[Key]int, len(spec.Rules))
	for _, r := range spec.Rules {
		d.transitions[r.Key] = r.Action
		if i, seen := position[r.Key]; seen {
			d.rules[i] = r
			continue
		}
		position[r.Key] = len(d.rules)
		d.rules = append(d.rules, r)
	}

	for sym := range d.tapeAlphabet {
		if len([]rune(string(sym))) > 1 {
			d.multiRune = true
			break
		}
	}

	return d
}

func toSet[T comparable](items []T) map[T]struct{} {
	set := make(map[T]struct{}, len(items))
	for _, it := range items {
		set[it] = struct{}{}
	}
	return set
}

func sortedKeys[T ~string](set map[T]struct{}) []T {
	out := make([]T, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

// Lookup returns the action for (state, symbol), if any.
func (d *Definition) Lookup(state State, symbol Symbol) (Action, bool) {
	a, ok := d.transitions[Key{State: state, Symbol: symbol}]
	return a, ok
}

// IsFinal reports whether state is one of the final states.
func (d *Definition) IsFinal(state State) bool {
	_, ok := d.finals[state]
	return ok
}

// States returns the declared states in source order.
func (d *Definition) States() []State { return slices.Clone(d.states) }

// InputAlphabet returns the input alphabet, sorted.
func (d *Definition) InputAlphabet() []Symbol { return sortedKeys(d.inputAlphabet) }

// TapeAlphabet returns the tape alphabet, sorted.
func (d *Definition) TapeAlphabet() []Symbol { return sortedKeys(d.tapeAlphabet) }

// Finals returns the final states, sorted.
func (d *Definition) Finals() []State { return sortedKeys(d.finals) }

// Initial returns the initial state.
func (d *Definition) Initial() State { return d.initial }

// Blank returns the blank symbol.
func (d *Definition) Blank() Symbol { return d.blank }

// InTapeAlphabet reports whether sym was declared in the tape alphabet.
func (d *Definition) InTapeAlphabet(sym Symbol) bool {
	_, ok := d.tapeAlphabet[sym]
	return ok
}

// InInputAlphabet reports whether sym was declared in the input alphabet.
func (d *Definition) InInputAlphabet(sym Symbol) bool {
	_, ok := d.inputAlphabet[sym]
	return ok
}

// HasMultiRuneSymbols reports whether any tape symbol spans more than one rune.
func (d *Definition) HasMultiRuneSymbols() bool { return d.multiRune }

// Rules lists the transition table in the order keys first appeared in the source.
func (d *Definition) Rules() []Rule { return slices.Clone(d.rules) }

// Len returns the number of distinct transition keys.
func (d *Definition) Len() int { return len(d.transitions) }

// Canonical renders the definition in a stable textual form.
// Two definitions with the same semantics produce the same string.
func (d *Definition) Canonical() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "states=%s\n", joinStates(d.states))
	fmt.Fprintf(&sb, "input=%s\n", joinSymbols(d.InputAlphabet()))
	fmt.Fprintf(&sb, "tape=%s\n", joinSymbols(d.TapeAlphabet()))
	fmt.Fprintf(&sb, "initial=%s\nblank=%s\n", d.initial, d.blank)
	fmt.Fprintf(&sb, "finals=%s\n", joinStates(d.Finals()))

	keys := make([]Key, 0, len(d.transitions))
	for k := range d.transitions {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b Key) int {
		if c := strings.Compare(string(a.State), string(b.State)); c != 0 {
			return c
		}
		return strings.Compare(string(a.Symbol), string(b.Symbol))
	})
	for _, k := range keys {
		a := d.transitions[k]
		fmt.Fprintf(&sb, "(%s,%s,%s,%s,%s)\n", k.State, k.Symbol, a.Next, a.Write, a.Move)
	}
	return sb.String()
}

func joinStates(states []State) string {
	parts := make([]string, len(states))
	for i, s := range states {
		parts[i] = string(s)
	}
	return strings.Join(parts, ",")
}

func joinSymbols(symbols []Symbol) string {
	parts := make([]string, len(symbols))
	for i, s := range symbols {
		parts[i] = string(s)
	}
	return strings.Join(parts, ",")
}
