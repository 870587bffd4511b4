package turing

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/ports"
)

// Runner drives a batch of inputs through an engine using provided IO.
// This allows for easy testing and integration with different frontends (CLI, HTTP, etc).
//
// The input stream names the mode on its first line and lists one input per following line.
// Runner writes exactly one result line per input, in input order.
type Runner struct {
	Input     io.Reader
	Output    io.Writer
	Formatter LineFormatter
}

// LineFormatter transforms a result line before it is written.
// This allows for terminal coloring without coupling the core package.
type LineFormatter func(string) string

// NewRunner creates a Runner over the given streams.
func NewRunner(in io.Reader, out io.Writer) *Runner {
	return &Runner{Input: in, Output: out}
}

// Run reads the batch, simulates every input and writes the results.
// An unknown mode returns domain.ErrUnknownMode before any input is simulated.
func (r *Runner) Run(ctx context.Context, engine ports.Engine) error {
	if r.Input == nil {
		return fmt.Errorf("input reader must be set (use os.Stdin)")
	}
	if r.Output == nil {
		return fmt.Errorf("output writer must be set (use os.Stdout)")
	}

	mode, inputs, err := ReadBatch(r.Input)
	if err != nil {
		return err
	}

	results := engine.RunBatch(ctx, mode, inputs)

	w := bufio.NewWriter(r.Output)
	for _, res := range results {
		line := res.Line()
		if r.Formatter != nil {
			line = r.Formatter(line)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
	}
	return w.Flush()
}

// ReadBatch parses an input stream: line 0 is the mode, every following line is one input.
// Lines are trimmed of surrounding whitespace; blank lines are kept as empty inputs.
func ReadBatch(in io.Reader) (domain.Mode, []string, error) {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return "", nil, fmt.Errorf("failed to read input: %w", err)
	}

	header := ""
	if len(lines) > 0 {
		header = lines[0]
	}
	mode, err := domain.ParseMode(header)
	if err != nil {
		return "", nil, err
	}

	inputs := []string{}
	if len(lines) > 1 {
		inputs = lines[1:]
	}
	return mode, inputs, nil
}
