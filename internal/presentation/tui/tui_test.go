package tui_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aretw0/turing/internal/presentation/tui"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func sampleDefinition() *domain.Definition {
	return domain.NewDefinition(domain.Spec{
		States:        []domain.State{"q0", "qf"},
		InputAlphabet: []domain.Symbol{"a"},
		TapeAlphabet:  []domain.Symbol{"a", "_", "|"},
		Initial:       "q0",
		Blank:         "_",
		Finals:        []domain.State{"qf"},
		Rules: []domain.Rule{
			{
				Key:    domain.Key{State: "q0", Symbol: "a"},
				Action: domain.Action{Next: "q0", Write: "|", Move: domain.Right},
			},
			{
				Key:    domain.Key{State: "q0", Symbol: "_"},
				Action: domain.Action{Next: "qf", Write: "_", Move: domain.Left},
			},
		},
	})
}

func TestDescribe(t *testing.T) {
	md := tui.Describe(sampleDefinition())

	assert.Contains(t, md, "- **States:** `q0`, `qf`")
	assert.Contains(t, md, "- **Initial state:** `q0`")
	assert.Contains(t, md, "- **Final states:** `qf`")
	assert.Contains(t, md, "## Transitions (2)")
	assert.Contains(t, md, "| `q0` | `a` | `q0` | `\\|` | R |")
	assert.Contains(t, md, "| `q0` | `_` | `qf` | `_` | L |")
}

func TestDescribe_Empty(t *testing.T) {
	def := domain.NewDefinition(domain.Spec{
		States:       []domain.State{"q0"},
		TapeAlphabet: []domain.Symbol{"_"},
		Initial:      "q0",
		Blank:        "_",
	})
	md := tui.Describe(def)

	assert.Contains(t, md, "- **Input alphabet:** _none_")
	assert.Contains(t, md, "## Transitions (0)")
	assert.True(t, strings.HasSuffix(md, "_none_\n"))
}

func TestColorizer_NonTerminalIsPlain(t *testing.T) {
	var buf bytes.Buffer
	c := tui.NewColorizer(&buf, "auto")

	assert.False(t, c.Enabled())
	assert.Equal(t, "accept", c.Line("accept"))
	assert.Equal(t, "error: boom", c.Line("error: boom"))
}

func TestColorizer_Always(t *testing.T) {
	var buf bytes.Buffer
	c := tui.NewColorizer(&buf, "always")

	assert.True(t, c.Enabled())
	assert.NotEqual(t, "accept", c.Line("accept"))
	assert.Contains(t, c.Line("reject"), "reject")
	// transducer output is never painted
	assert.Equal(t, "ab_", c.Line("ab_"))
}

func TestNewRenderer(t *testing.T) {
	render := tui.NewRenderer()
	out, err := render("# Title\n")
	assert.NoError(t, err)
	assert.Contains(t, out, "Title")
}
