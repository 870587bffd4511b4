package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/turing/pkg/domain"
)

// Describe renders a markdown summary of a definition.
func Describe(def *domain.Definition) string {
	var sb strings.Builder

	sb.WriteString("# Turing machine\n\n")
	fmt.Fprintf(&sb, "- **States:** %s\n", joinCode(stateStrings(def.States())))
	fmt.Fprintf(&sb, "- **Input alphabet:** %s\n", joinCode(symbolStrings(def.InputAlphabet())))
	fmt.Fprintf(&sb, "- **Tape alphabet:** %s\n", joinCode(symbolStrings(def.TapeAlphabet())))
	fmt.Fprintf(&sb, "- **Initial state:** `%s`\n", def.Initial())
	fmt.Fprintf(&sb, "- **Blank symbol:** `%s`\n", def.Blank())
	fmt.Fprintf(&sb, "- **Final states:** %s\n", joinCode(stateStrings(def.Finals())))

	rules := def.Rules()
	fmt.Fprintf(&sb, "\n## Transitions (%d)\n\n", len(rules))
	if len(rules) == 0 {
		sb.WriteString("_none_\n")
		return sb.String()
	}

	sb.WriteString("| State | Read | Next | Write | Move |\n")
	sb.WriteString("|---|---|---|---|---|\n")
	for _, r := range rules {
		fmt.Fprintf(&sb, "| `%s` | `%s` | `%s` | `%s` | %s |\n",
			escapeCell(string(r.State)),
			escapeCell(string(r.Symbol)),
			escapeCell(string(r.Next)),
			escapeCell(string(r.Write)),
			r.Move)
	}
	return sb.String()
}

func joinCode(items []string) string {
	if len(items) == 0 {
		return "_none_"
	}
	quoted := make([]string, len(items))
	for i, it := range items {
		quoted[i] = "`" + it + "`"
	}
	return strings.Join(quoted, ", ")
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}

func stateStrings(states []domain.State) []string {
	out := make([]string, len(states))
	for i, s := range states {
		out[i] = string(s)
	}
	return out
}

func symbolStrings(symbols []domain.Symbol) []string {
	out := make([]string, len(symbols))
	for i, s := range symbols {
		out[i] = string(s)
	}
	return out
}
