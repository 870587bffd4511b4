package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/internal/dto"
	"github.com/aretw0/turing/internal/presentation/graph"
	"github.com/aretw0/turing/internal/presentation/tui"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/ports"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	definitionURI = "turing://definition"
	graphURI      = "turing://graph"
)

// Server wraps a machine-bound engine and exposes it as an MCP Server.
type Server struct {
	engine    ports.Engine
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(engine ports.Engine, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		engine:    engine,
		logger:    logger,
		mcpServer: server.NewMCPServer("turing-mcp", strings.TrimSpace(turing.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
// It returns when ctx is done or the listener fails.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func (s *Server) registerTools() {
	// TOOL: recognize
	s.mcpServer.AddTool(mcp.NewTool("recognize",
		mcp.WithDescription("Run the machine as a recognizer. Returns one line per input: accept or reject."),
		mcp.WithString("inputs", mcp.Required(), mcp.Description("Input strings, one per line")),
	), s.runHandler(domain.ModeRecognizer))

	// TOOL: transduce
	s.mcpServer.AddTool(mcp.NewTool("transduce",
		mcp.WithDescription("Run the machine as a transducer. Returns one line per input: the tape from the head rightwards."),
		mcp.WithString("inputs", mcp.Required(), mcp.Description("Input strings, one per line")),
	), s.runHandler(domain.ModeTransducer))

	// TOOL: describe_machine
	s.mcpServer.AddTool(mcp.NewTool("describe_machine",
		mcp.WithDescription("Describe the loaded machine: states, alphabets and transition table in markdown."),
	), s.handleDescribe)
}

func (s *Server) runHandler(mode domain.Mode) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		raw, err := request.RequireString("inputs")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		_, inputs, err := turing.ReadBatch(strings.NewReader(string(mode) + "\n" + raw))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid inputs: %v", err)), nil
		}

		results := s.engine.RunBatch(ctx, mode, inputs)
		lines := make([]string, len(results))
		for i, res := range results {
			lines[i] = res.Line()
			if res.Err != nil {
				s.logger.Warn("MCP run did not halt", "mode", mode, "input", res.Input, "error", res.Err)
			}
		}
		return mcp.NewToolResultText(strings.Join(lines, "\n")), nil
	}
}

func (s *Server) handleDescribe(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(tui.Describe(s.engine.Definition())), nil
}

func (s *Server) registerResources() {
	// EXPOSE: turing://definition
	s.mcpServer.AddResource(mcp.NewResource(definitionURI, "Machine Definition",
		mcp.WithMIMEType("application/json"),
	), s.readDefinition)

	// EXPOSE: turing://graph
	s.mcpServer.AddResource(mcp.NewResource(graphURI, "State Diagram (Mermaid)",
		mcp.WithMIMEType("text/plain"),
	), s.readGraph)
}

func (s *Server) readDefinition(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	jsonBytes, err := json.Marshal(dto.FromDefinition(s.engine.Definition()))
	if err != nil {
		return nil, fmt.Errorf("failed to encode definition: %w", err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      definitionURI,
			MIMEType: "application/json",
			Text:     string(jsonBytes),
		},
	}, nil
}

func (s *Server) readGraph(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      graphURI,
			MIMEType: "text/plain",
			Text:     graph.GenerateMermaid(s.engine.Definition()),
		},
	}, nil
}
