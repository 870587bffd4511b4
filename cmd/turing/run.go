package main

import (
	"github.com/aretw0/turing/internal/cli"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <definition> <input>",
	Short: "Run a batch of inputs through a machine",
	Long: `Loads the machine definition (line format, or YAML/JSON by extension) and runs every input
of the input file in the mode named on its first line. This is also the default command.`,
	Args:          cobra.ExactArgs(2),
	SilenceErrors: true,
	RunE:          runBatch,
}

func init() {
	rootCmd.AddCommand(runCmd)
	addRunFlags(runCmd)
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().String("color", "auto", "Color results: auto, always, never")
}

func runBatch(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, closer, err := cli.NewLogger(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx := cli.WithInterrupt(cmd.Context())
	defer ctx.Stop()

	err = cli.Execute(ctx, cli.RunOptions{
		DefinitionPath: args[0],
		InputPath:      args[1],
		Config:         cfg,
		Output:         cmd.OutOrStdout(),
	}, logger)
	if sig := ctx.Signal(); sig != nil {
		logger.Warn("Interrupted, unfinished inputs were reported as errors", "signal", sig)
	}
	return err
}
