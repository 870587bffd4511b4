package main

import (
	"errors"
	"log"
	"net/http"
	"os"

	"github.com/aretw0/turing/internal/cli"
	"github.com/aretw0/turing/pkg/adapters/mcp"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp <definition>",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts the machine as an MCP Server.
This allows AI agents to run the machine through the recognize and transduce tools.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		transport, _ := cmd.Flags().GetString("transport")
		port, _ := cmd.Flags().GetInt("port")

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

		// 1. Initialize Engine
		engine, cleanup, err := cli.CreateEngine(ctx, args[0], cfg, logger, domain.LifecycleHooks{})
		if err != nil {
			return err
		}
		defer func() { _ = cleanup() }()

		// 2. Initialize MCP Server Adapter
		srv := mcp.NewServer(engine, logger)

		// 3. Start Server based on Transport
		switch transport {
		case "stdio":
			// Ensure logs don't corrupt JSON-RPC on Stdout
			log.SetOutput(os.Stderr)
			logger.Info("Starting turing MCP Server (Stdio)...")
			return srv.ServeStdio()
		case "sse":
			logger.Info("Starting turing MCP Server (SSE)", "port", port)
			if err := srv.ServeSSE(ctx, port); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			logger.Info("MCP Server stopped gracefully")
			return nil
		default:
			return errors.New("unknown transport " + transport + " (use stdio or sse)")
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.Flags().String("transport", "stdio", "Transport: stdio or sse")
	mcpCmd.Flags().Int("port", 8080, "Port for the sse transport")
}
