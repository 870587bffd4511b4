package main

import (
	"fmt"

	"github.com/aretw0/turing/internal/compiler"
	"github.com/aretw0/turing/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var describeCmd = &cobra.Command{
	Use:   "describe <definition>",
	Short: "Print a summary of the machine",
	Long:  `Prints the states, alphabets and transition table as markdown, rendered for the terminal when attached to one.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		out := cmd.OutOrStdout()

		def, err := compiler.LoadFile(args[0])
		if err != nil {
			return err
		}

		md := tui.Describe(def)
		raw, _ := cmd.Flags().GetBool("raw")
		if raw || !tui.IsTerminal(out) {
			fmt.Fprint(out, md)
			return nil
		}

		rendered, err := tui.NewRenderer()(md)
		if err != nil {
			return fmt.Errorf("failed to render: %w", err)
		}
		fmt.Fprint(out, rendered)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
	describeCmd.Flags().Bool("raw", false, "Print markdown without terminal rendering")
}
