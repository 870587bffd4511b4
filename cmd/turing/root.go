package main

import (
	"fmt"
	"os"

	"github.com/aretw0/turing/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "turing <definition> <input>",
	Short: "Turing is a single-tape deterministic Turing machine simulator",
	Long: `Turing runs a machine definition against a batch of inputs.

The input file names the mode on its first line (recognizer or transducer)
and lists one input string per following line. One result line is printed per input.`,
	Args:          cobra.ExactArgs(2),
	SilenceErrors: true,
	RunE:          runBatch,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "turing.yaml", "Config file (YAML or TOML)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-file", "", "Also write JSON logs to this file")
	rootCmd.PersistentFlags().Int("step-limit", 0, "Abort a run after this many steps (0 = unbounded)")
	rootCmd.PersistentFlags().Int("workers", 0, "Inputs simulated in parallel")
	rootCmd.PersistentFlags().String("cache", "", "Result cache backend: none, memory, redis")
	rootCmd.PersistentFlags().String("redis-addr", "", "Redis address for the redis cache")

	addRunFlags(rootCmd)
}

// loadConfig reads the config file and applies the flags that were set explicitly.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-file") {
		cfg.LogFile, _ = flags.GetString("log-file")
	}
	if flags.Changed("step-limit") {
		cfg.StepLimit, _ = flags.GetInt("step-limit")
	}
	if flags.Changed("workers") {
		cfg.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("cache") {
		cfg.Cache.Backend, _ = flags.GetString("cache")
	}
	if flags.Changed("redis-addr") {
		cfg.Cache.RedisAddr, _ = flags.GetString("redis-addr")
	}
	if f := flags.Lookup("color"); f != nil && f.Changed {
		cfg.Color = f.Value.String()
	}
	if f := flags.Lookup("port"); f != nil && f.Changed {
		cfg.Serve.Port = f.Value.String()
	}

	return cfg, cfg.Validate()
}
