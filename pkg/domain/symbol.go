package domain

import "strings"

// Symbol is an atomic tape label. It is usually a single character but multi-character
// symbols are allowed.
type Symbol string

// State is an opaque state label.
type State string

// Direction is the head movement applied after a write.
type Direction int

const (
	// Stay leaves the head in place. Any direction token other than L or R maps here.
	Stay Direction = iota
	Left
	Right
)

// ParseDirection maps a direction token to a Direction.
// Only "L" and "R" move the head; other tokens are kept as Stay so that
// machines written against the permissive format keep running.
func ParseDirection(token string) Direction {
	switch strings.TrimSpace(token) {
	case "L":
		return Left
	case "R":
		return Right
	default:
		return Stay
	}
}

// Offset returns the head displacement for the direction.
func (d Direction) Offset() int {
	switch d {
	case Left:
		return -1
	case Right:
		return 1
	default:
		return 0
	}
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "L"
	case Right:
		return "R"
	default:
		return "S"
	}
}
