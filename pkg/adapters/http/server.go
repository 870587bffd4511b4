package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/aretw0/turing/internal/dto"
	"github.com/aretw0/turing/internal/presentation/graph"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/ports"
	"github.com/go-chi/chi/v5"
)

// maxBodyBytes bounds POST /run payloads.
const maxBodyBytes = 1 << 20

// RunRequest is the body of POST /run.
type RunRequest struct {
	Mode   string   `json:"mode"`
	Inputs []string `json:"inputs"`
}

// RunResult is one entry of a RunResponse.
type RunResult struct {
	Input  string            `json:"input"`
	Output string            `json:"output"`
	Steps  int               `json:"steps"`
	Halt   domain.HaltReason `json:"halt"`
	Error  string            `json:"error,omitempty"`
}

// RunResponse is the body returned by POST /run. Results follow the request order.
type RunResponse struct {
	Mode    domain.Mode `json:"mode"`
	Results []RunResult `json:"results"`
}

// Server exposes a machine-bound engine over HTTP.
type Server struct {
	Engine ports.Engine
	Logger *slog.Logger
}

// NewHandler creates a new HTTP handler for the engine.
func NewHandler(engine ports.Engine, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{Engine: engine, Logger: logger}

	r := chi.NewRouter()
	r.Get("/healthz", s.GetHealth)
	r.Get("/definition", s.GetDefinition)
	r.Get("/graph", s.GetGraph)
	r.Post("/run", s.Run)

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetHealth handles GET /healthz.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetDefinition handles GET /definition.
func (s *Server) GetDefinition(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.FromDefinition(s.Engine.Definition()))
}

// GetGraph handles GET /graph and returns the Mermaid source of the state diagram.
func (s *Server) GetGraph(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = fmt.Fprint(w, graph.GenerateMermaid(s.Engine.Definition()))
}

// Run handles POST /run.
func (s *Server) Run(w http.ResponseWriter, r *http.Request) {
	var body RunRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.Logger.Warn("Run: Invalid request body", "error", err)
		return
	}

	mode, err := domain.ParseMode(body.Mode)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrUnknownMode) {
			status = http.StatusBadRequest
		}
		http.Error(w, err.Error(), status)
		return
	}

	results := s.Engine.RunBatch(r.Context(), mode, body.Inputs)

	resp := RunResponse{Mode: mode, Results: make([]RunResult, len(results))}
	for i, res := range results {
		resp.Results[i] = RunResult{
			Input:  res.Input,
			Output: res.Output,
			Steps:  res.Steps,
			Halt:   res.Halt,
		}
		if res.Err != nil {
			resp.Results[i].Error = res.Err.Error()
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}
