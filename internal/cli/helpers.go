package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/turing/internal/config"
	"github.com/aretw0/turing/internal/logging"
)

// NewLogger configures the application logger from cfg.
// Records go to Stderr so they never mix with result lines on Stdout.
// When a log file is configured it receives a JSON copy; the returned closer releases it.
func NewLogger(cfg config.Config) (*slog.Logger, io.Closer, error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	if cfg.LogFile == "" {
		return logging.New(level), nopCloser{}, nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return logging.New(level, f), f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// PrintSystemMessage prints a standardized system message.
func PrintSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}
