package domain

// Key identifies an entry of the transition function.
type Key struct {
	State  State
	Symbol Symbol
}

// Action is the right-hand side of a transition: the state to enter,
// the symbol to write under the head and the head movement.
type Action struct {
	Next  State
	Write Symbol
	Move  Direction
}

// Rule is a full transition entry, used when the table has to be listed
// (graph export, describe, structured documents).
type Rule struct {
	Key
	Action

	// Line is the 0-based source line the winning entry came from, or -1 when unknown.
	Line int
	// Raw is the direction token as written in the source.
	Raw string
}
