package runtime_test

import (
	"testing"

	"github.com/aretw0/turing/internal/runtime"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func symbols(s ...string) []domain.Symbol {
	out := make([]domain.Symbol, len(s))
	for i, v := range s {
		out[i] = domain.Symbol(v)
	}
	return out
}

func TestTape_VirtualBlankRead(t *testing.T) {
	tape := runtime.NewTape(symbols("a", "b"), "_")

	assert.Equal(t, domain.Symbol("_"), tape.Read(-1))
	assert.Equal(t, domain.Symbol("_"), tape.Read(2))
	assert.Equal(t, domain.Symbol("_"), tape.Read(100))
	assert.Equal(t, 2, tape.Len(), "reading outside the window must not materialize cells")
	assert.Equal(t, domain.Symbol("b"), tape.Read(1))
}

func TestTape_Write(t *testing.T) {
	t.Run("In place", func(t *testing.T) {
		tape := runtime.NewTape(symbols("a", "b"), "_")
		assert.Equal(t, 1, tape.Write(1, "x"))
		assert.Equal(t, "ax", tape.String())
	})

	t.Run("Right growth", func(t *testing.T) {
		tape := runtime.NewTape(symbols("a"), "_")
		assert.Equal(t, 1, tape.Write(1, "x"))
		assert.Equal(t, 2, tape.Len())
		assert.Equal(t, domain.Symbol("x"), tape.Read(1))
	})

	t.Run("Left collapse", func(t *testing.T) {
		tape := runtime.NewTape(symbols("a"), "_")

		pos := tape.Write(-1, "x")
		assert.Equal(t, 0, pos)
		assert.Equal(t, "xa", tape.String())

		pos = tape.Write(pos-1, "y")
		assert.Equal(t, 0, pos, "a second left write lands at index 0 again")
		assert.Equal(t, "yxa", tape.String())
	})

	t.Run("Empty tape", func(t *testing.T) {
		tape := runtime.NewTape(nil, "_")
		assert.Equal(t, 0, tape.Write(0, "x"))
		assert.Equal(t, "x", tape.String())
	})
}

func TestTape_From(t *testing.T) {
	tape := runtime.NewTape(symbols("a", "b", "c"), "_")

	assert.Equal(t, "abc", tape.From(0))
	assert.Equal(t, "c", tape.From(2))
	assert.Equal(t, "", tape.From(3))
	assert.Equal(t, "", tape.From(10))
	assert.Equal(t, "c", tape.From(-1))
	assert.Equal(t, "abc", tape.From(-5))
	assert.Equal(t, "", runtime.NewTape(nil, "_").From(-1))
}

func TestTape_IsolatedFromInput(t *testing.T) {
	cells := symbols("a", "b")
	tape := runtime.NewTape(cells, "_")
	tape.Write(0, "z")
	assert.Equal(t, domain.Symbol("a"), cells[0])

	out := tape.Cells()
	out[1] = "q"
	assert.Equal(t, "zb", tape.String())
}

func TestTokenize(t *testing.T) {
	single := domain.NewDefinition(domain.Spec{TapeAlphabet: symbols("a", "b", "_"), Blank: "_"})
	assert.Equal(t, symbols("a", "b", "a"), runtime.Tokenize(single, "aba"))
	assert.Equal(t, symbols("é", "x"), runtime.Tokenize(single, "éx"))
	assert.Empty(t, runtime.Tokenize(single, ""))
	assert.Equal(t, symbols("a", "\xff", "b"), runtime.Tokenize(single, "a\xffb"), "invalid bytes stay intact")

	multi := domain.NewDefinition(domain.Spec{TapeAlphabet: symbols("a", "ab", "#end", "_"), Blank: "_"})
	assert.Equal(t, symbols("ab", "a", "#end", "z"), runtime.Tokenize(multi, "aba#endz"))
}
