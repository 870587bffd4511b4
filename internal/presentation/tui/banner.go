package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the serve banner.
func PrintBanner(w io.Writer, c *Colorizer, title string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, c.Accent("  ▶ turing"), c.Dim("· "+title))
	fmt.Fprintln(w)
}

// Colorizer paints output when the destination is a terminal.
type Colorizer struct {
	profile termenv.Profile
}

// NewColorizer creates a Colorizer for w.
// mode is "always", "never" or "auto"; auto enables color only when w is a terminal.
func NewColorizer(w io.Writer, mode string) *Colorizer {
	switch mode {
	case "never":
		return &Colorizer{profile: termenv.Ascii}
	case "always":
		return &Colorizer{profile: termenv.ANSI256}
	}
	if !IsTerminal(w) {
		return &Colorizer{profile: termenv.Ascii}
	}
	return &Colorizer{profile: termenv.NewOutput(w).EnvColorProfile()}
}

// Enabled reports whether any styling is applied.
func (c *Colorizer) Enabled() bool {
	return c.profile != termenv.Ascii
}

// Line colors a result line: accept green, reject red, errors yellow.
// Transducer outputs are left as they are.
func (c *Colorizer) Line(line string) string {
	switch {
	case line == "accept":
		return c.paint(line, "#22c55e")
	case line == "reject":
		return c.paint(line, "#ef4444")
	case len(line) > 6 && line[:6] == "error:":
		return c.paint(line, "#eab308")
	}
	return line
}

// Accent paints s in the banner color.
func (c *Colorizer) Accent(s string) string {
	return c.paint(s, "#818cf8")
}

// Dim paints s in a muted gray.
func (c *Colorizer) Dim(s string) string {
	return c.paint(s, "#6b7280")
}

func (c *Colorizer) paint(s, hex string) string {
	if !c.Enabled() {
		return s
	}
	return termenv.String(s).Foreground(c.profile.Color(hex)).String()
}
