package main

import (
	"fmt"

	"github.com/aretw0/turing/internal/compiler"
	"github.com/aretw0/turing/internal/validator"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <definition>",
	Short: "Check the definition for consistency",
	Long: `Parses the definition and runs the strict checks the simulator itself never applies:
undeclared states and symbols, inconsistent alphabets and unknown move directions.
States that cannot be reached from the initial state are reported as warnings.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		out := cmd.OutOrStdout()

		def, err := compiler.LoadFile(args[0])
		if err != nil {
			return err
		}

		if err := validator.Validate(def); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}

		for _, s := range validator.Unreachable(def) {
			fmt.Fprintf(out, "warning: state %q is unreachable from %q\n", s, def.Initial())
		}
		fmt.Fprintln(out, "Definition is valid! ✅")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
