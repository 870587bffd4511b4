package runtime

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/aretw0/turing/pkg/domain"
)

// Tape is the materialized window of an unbounded tape.
// Cells outside [0, Len()) read as the blank symbol and are only created by writes.
type Tape struct {
	cells []domain.Symbol
	blank domain.Symbol
}

// NewTape creates a tape holding cells, with blank as the implicit fill value.
func NewTape(cells []domain.Symbol, blank domain.Symbol) *Tape {
	return &Tape{cells: slices.Clone(cells), blank: blank}
}

// Len returns the number of materialized cells.
func (t *Tape) Len() int { return len(t.cells) }

// Read returns the symbol at pos without materializing anything.
func (t *Tape) Read(pos int) domain.Symbol {
	if pos < 0 || pos >= len(t.cells) {
		return t.blank
	}
	return t.cells[pos]
}

// Write stores sym at pos and returns the head position to use afterwards.
//
// pos must not exceed Len(). A write at pos == Len() appends. A write at a negative position inserts a
// single cell at index 0 and the returned position is 0: the tape origin moves
// to the new cell instead of keeping a negative offset.
func (t *Tape) Write(pos int, sym domain.Symbol) int {
	switch {
	case pos < 0:
		t.cells = slices.Insert(t.cells, 0, sym)
		return 0
	case pos < len(t.cells):
		t.cells[pos] = sym
	default:
		t.cells = append(t.cells, sym)
	}
	return pos
}

// From joins the materialized cells from pos to the end.
// It returns "" when pos is at or past the end. A negative pos counts back from
// the end, so a head parked at -1 yields only the last cell.
func (t *Tape) From(pos int) string {
	if pos >= len(t.cells) {
		return ""
	}
	if pos < 0 {
		pos = max(len(t.cells)+pos, 0)
	}
	return join(t.cells[pos:])
}

// Cells returns a copy of the materialized cells.
func (t *Tape) Cells() []domain.Symbol { return slices.Clone(t.cells) }

func (t *Tape) String() string { return join(t.cells) }

func join(cells []domain.Symbol) string {
	var sb strings.Builder
	for _, c := range cells {
		sb.WriteString(string(c))
	}
	return sb.String()
}

// Tokenize splits an input string into tape symbols.
// Every rune is a symbol unless the machine declares multi-rune tape symbols,
// in which case the longest declared symbol matching at each position wins and
// undeclared runes fall back to single-rune symbols.
func Tokenize(def *domain.Definition, input string) []domain.Symbol {
	if !def.HasMultiRuneSymbols() {
		out := make([]domain.Symbol, 0, len(input))
		for rest := input; rest != ""; {
			_, size := utf8.DecodeRuneInString(rest)
			out = append(out, domain.Symbol(rest[:size]))
			rest = rest[size:]
		}
		return out
	}

	alphabet := def.TapeAlphabet()
	slices.SortStableFunc(alphabet, func(a, b domain.Symbol) int {
		return len(b) - len(a)
	})

	var out []domain.Symbol
	for rest := input; rest != ""; {
		matched := false
		for _, sym := range alphabet {
			if sym != "" && strings.HasPrefix(rest, string(sym)) {
				out = append(out, sym)
				rest = rest[len(sym):]
				matched = true
				break
			}
		}
		if !matched {
			_, size := utf8.DecodeRuneInString(rest)
			out = append(out, domain.Symbol(rest[:size]))
			rest = rest[size:]
		}
	}
	return out
}
