package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/internal/config"
	"github.com/aretw0/turing/internal/presentation/tui"
	"github.com/aretw0/turing/pkg/domain"
)

// RunOptions contains all the configuration for the Run command.
type RunOptions struct {
	DefinitionPath string
	InputPath      string
	Config         config.Config
	Output         io.Writer
}

// Execute handles the 'run' command: it loads the definition, reads the input file
// and prints one result line per input.
func Execute(ctx context.Context, opts RunOptions, logger *slog.Logger) error {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	engine, cleanup, err := CreateEngine(ctx, opts.DefinitionPath, opts.Config, logger, domain.LifecycleHooks{})
	if err != nil {
		return err
	}
	defer func() { _ = cleanup() }()

	in, err := os.Open(opts.InputPath)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer in.Close()

	r := turing.NewRunner(in, out)
	if c := tui.NewColorizer(out, opts.Config.Color); c.Enabled() {
		r.Formatter = c.Line
	}

	logger.Debug("Running batch", "definition", opts.DefinitionPath, "input", opts.InputPath)
	return r.Run(ctx, engine)
}
