package main

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/aretw0/turing"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	var short bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the turing version and build platform",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			v := strings.TrimSpace(turing.Version)
			if short {
				fmt.Fprintln(cmd.OutOrStdout(), v)
				return
			}
			fmt.Fprintf(cmd.OutOrStdout(), "turing version %s (%s, %s/%s)\n",
				v, runtime.Version(), runtime.GOOS, runtime.GOARCH)
		},
	}
	cmd.Flags().BoolVar(&short, "short", false, "print only the version number")
	return cmd
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
}
