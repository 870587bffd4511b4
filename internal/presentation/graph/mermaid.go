package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/turing/pkg/domain"
)

// GenerateMermaid produces a Mermaid flowchart of the transition table.
// It applies semantic styling:
// - Initial: ((Circle))
// - Final: (((Double circle)))
// - Default: [Rectangle]
// Edges are labelled "read→write,move". Rules sharing the same endpoints are
// merged into one edge with the labels joined by "<br/>".
func GenerateMermaid(def *domain.Definition) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	seen := make(map[domain.State]bool)
	var nodes []domain.State
	addNode := func(s domain.State) {
		if !seen[s] {
			seen[s] = true
			nodes = append(nodes, s)
		}
	}
	addNode(def.Initial())
	for _, s := range def.States() {
		addNode(s)
	}

	type edge struct{ from, to domain.State }
	var order []edge
	labels := make(map[edge][]string)
	for _, r := range def.Rules() {
		addNode(r.State)
		addNode(r.Next)
		e := edge{from: r.State, to: r.Next}
		if _, ok := labels[e]; !ok {
			order = append(order, e)
		}
		labels[e] = append(labels[e], fmt.Sprintf("%s→%s,%s", r.Symbol, r.Write, r.Move))
	}

	for _, s := range nodes {
		opener, closer := "[", "]"
		switch {
		case def.IsFinal(s):
			opener, closer = "(((", ")))"
		case s == def.Initial():
			opener, closer = "((", "))"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", sanitizeMermaidID(s), opener, escapeLabel(string(s)), closer))
	}

	for _, e := range order {
		label := escapeLabel(strings.Join(labels[e], "<br/>"))
		sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n", sanitizeMermaidID(e.from), label, sanitizeMermaidID(e.to)))
	}

	sb.WriteString("\n    classDef initial fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
	sb.WriteString(fmt.Sprintf("    class %s initial;\n", sanitizeMermaidID(def.Initial())))

	return sb.String()
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "#quot;")
}

func sanitizeMermaidID(s domain.State) string {
	var sb strings.Builder
	sb.WriteString("s_")
	for _, r := range string(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			sb.WriteRune(r)
		default:
			sb.WriteString(fmt.Sprintf("u%04x", r))
		}
	}
	return sb.String()
}
