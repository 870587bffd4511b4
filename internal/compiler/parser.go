package compiler

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/turing/internal/dto"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Fixed header layout of the line format. Line 0 is a free-form header.
const (
	lineStates = iota + 1
	lineInputAlphabet
	lineTapeAlphabet
	lineInitial
	lineBlank
	lineFinals
	headerLines
)

// Parser is responsible for converting definition sources into a domain.Definition.
type Parser struct{}

// NewParser creates a new parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads a line-oriented definition from r.
func (p *Parser) Parse(r io.Reader) (*domain.Definition, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read definition: %w", err)
	}
	return p.ParseLines(lines)
}

// ParseLines builds a definition from the fixed line layout:
//
//	0: header (ignored)
//	1: states            4: initial state
//	2: input alphabet    5: blank symbol
//	3: tape alphabet     6: final states
//	7+: (state,symbol,next,write,L|R)
//
// Lines after the header that do not start with "(" are skipped.
// States and symbols are not checked against the declared sets.
func (p *Parser) ParseLines(raw []string) (*domain.Definition, error) {
	if len(raw) < headerLines {
		return nil, &domain.DefinitionFormatError{
			Line:   len(raw),
			Reason: fmt.Sprintf("expected at least %d lines, got %d", headerLines, len(raw)),
		}
	}

	lines := make([]string, len(raw))
	for i, l := range raw {
		lines[i] = strings.TrimSpace(l)
	}

	required := map[int]string{
		lineStates:       "states",
		lineTapeAlphabet: "tape alphabet",
		lineInitial:      "initial state",
		lineBlank:        "blank symbol",
	}
	for i := lineStates; i < headerLines; i++ {
		if name, ok := required[i]; ok && lines[i] == "" {
			return nil, &domain.DefinitionFormatError{Line: i, Reason: name + " line is empty"}
		}
	}

	spec := domain.Spec{
		States:        toStates(splitList(lines[lineStates])),
		InputAlphabet: toSymbols(splitList(lines[lineInputAlphabet])),
		TapeAlphabet:  toSymbols(splitList(lines[lineTapeAlphabet])),
		Initial:       domain.State(lines[lineInitial]),
		Blank:         domain.Symbol(lines[lineBlank]),
		Finals:        toStates(splitList(lines[lineFinals])),
	}

	for i := headerLines; i < len(lines); i++ {
		line := lines[i]
		if !strings.HasPrefix(line, "(") {
			continue
		}
		r, err := parseRule(i, line)
		if err != nil {
			return nil, err
		}
		spec.Rules = append(spec.Rules, r)
	}

	return domain.NewDefinition(spec), nil
}

func parseRule(lineNo int, line string) (domain.Rule, error) {
	parts := strings.Split(strings.Trim(line, "()"), ",")
	if len(parts) != 5 {
		return domain.Rule{}, &domain.TransitionFormatError{Line: lineNo, Text: line, Fields: len(parts)}
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return domain.Rule{
		Key: domain.Key{State: domain.State(parts[0]), Symbol: domain.Symbol(parts[1])},
		Action: domain.Action{
			Next:  domain.State(parts[2]),
			Write: domain.Symbol(parts[3]),
			Move:  domain.ParseDirection(parts[4]),
		},
		Line: lineNo,
		Raw:  parts[4],
	}, nil
}

// ParseDocument reads a structured YAML or JSON definition.
// The document is decoded into a generic map first and then bound with mapstructure,
// so unquoted scalars such as 0 or 1 are accepted as symbols.
func (p *Parser) ParseDocument(data []byte) (*domain.Definition, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDefinitionFormat, err)
	}
	if raw == nil {
		return nil, &domain.DefinitionFormatError{Line: 0, Reason: "document is empty"}
	}

	var doc dto.DefinitionDocument
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &doc,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDefinitionFormat, err)
	}

	switch {
	case len(doc.States) == 0:
		return nil, &domain.DefinitionFormatError{Line: lineStates, Reason: "states are missing"}
	case len(doc.TapeAlphabet) == 0:
		return nil, &domain.DefinitionFormatError{Line: lineTapeAlphabet, Reason: "tape alphabet is missing"}
	case doc.InitialState == "":
		return nil, &domain.DefinitionFormatError{Line: lineInitial, Reason: "initial state is missing"}
	case doc.Blank == "":
		return nil, &domain.DefinitionFormatError{Line: lineBlank, Reason: "blank symbol is missing"}
	}

	for i, t := range doc.Transitions {
		if n := countFields(t); n != 5 {
			return nil, &domain.TransitionFormatError{
				Line:   i,
				Text:   fmt.Sprintf("(%s,%s,%s,%s,%s)", t.From, t.Read, t.To, t.Write, t.Move),
				Fields: n,
			}
		}
	}

	return domain.NewDefinition(doc.ToSpec()), nil
}

func countFields(t dto.TransitionItem) int {
	n := 0
	for _, f := range []string{t.From, t.Read, t.To, t.Write, t.Move} {
		if f != "" {
			n++
		}
	}
	return n
}

// LoadFile reads a definition from disk, picking the format from the extension:
// .yaml, .yml and .json are structured documents, anything else uses the line format.
func LoadFile(path string) (*domain.Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition: %w", err)
	}

	p := NewParser()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return p.ParseDocument(data)
	default:
		return p.Parse(bytes.NewReader(data))
	}
}

func splitList(line string) []string {
	if line == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(line, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func toStates(in []string) []domain.State {
	out := make([]domain.State, len(in))
	for i, s := range in {
		out[i] = domain.State(s)
	}
	return out
}

func toSymbols(in []string) []domain.Symbol {
	out := make([]domain.Symbol, len(in))
	for i, s := range in {
		out[i] = domain.Symbol(s)
	}
	return out
}
