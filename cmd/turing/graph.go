package main

import (
	"fmt"

	"github.com/aretw0/turing/internal/compiler"
	"github.com/aretw0/turing/internal/presentation/graph"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <definition>",
	Short: "Export the state diagram",
	Long:  `Parses the definition and outputs a Mermaid diagram (graph LR) of its transition table.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		def, err := compiler.LoadFile(args[0])
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(def))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
