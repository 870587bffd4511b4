package ports

import (
	"context"

	"github.com/aretw0/turing/pkg/domain"
)

// Engine is the machine-bound runner used by adapters (e.g., HTTP, MCP).
// Every call starts from a fresh configuration; nothing is carried between runs.
type Engine interface {
	// Run executes a single input under the halting policy of mode.
	Run(ctx context.Context, mode domain.Mode, input string) domain.Result

	// RunBatch executes inputs and returns one result per input, in order.
	RunBatch(ctx context.Context, mode domain.Mode, inputs []string) []domain.Result

	// Definition returns the machine the engine runs.
	Definition() *domain.Definition
}
