package testutils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/turing/internal/compiler"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/stretchr/testify/require"
)

// ParseDefinition parses a line-format definition written as a Go raw string.
// A leading newline is dropped so the header can start on the line after the backtick.
// It fails the test immediately on error.
func ParseDefinition(t *testing.T, src string) *domain.Definition {
	t.Helper()

	def, err := compiler.NewParser().Parse(strings.NewReader(strings.TrimLeft(src, "\n")))
	require.NoError(t, err, "Failed to parse definition")
	return def
}

// WriteFile creates name with content in a temporary directory and returns its absolute path.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644), "Failed to write %s", name)
	return path
}
